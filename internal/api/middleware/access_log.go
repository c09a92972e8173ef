package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

// AccessLog пишет строку лога на каждый запрос с полем request_id
// Должен стоять после RequestID
func AccessLog(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			reqLog := log
			if id, ok := GetRequestID(r.Context()); ok {
				reqLog = log.With("request_id", id)
			}

			switch {
			case sw.status >= http.StatusInternalServerError:
				reqLog.Error("%s %s - %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
			case sw.status >= http.StatusBadRequest:
				reqLog.Warn("%s %s - %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
			default:
				reqLog.Info("%s %s - %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
			}
		})
	}
}
