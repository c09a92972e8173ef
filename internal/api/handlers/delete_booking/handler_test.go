package delete_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookings"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type stubService struct {
	err     error
	deleted []int64
}

func (s *stubService) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandler_NoContent(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/bookings/4")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, []int64{4}, svc.deleted)
}

func TestHandler_NotFound(t *testing.T) {
	rec := serve(&stubService{err: fmt.Errorf("%w: id=4", bookings.ErrBookingNotFound)}, "/api/v1/bookings/4")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Internal(t *testing.T) {
	rec := serve(&stubService{err: bookings.ErrInternal}, "/api/v1/bookings/4")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
