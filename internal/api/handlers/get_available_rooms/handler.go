package get_available_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const msgInvalidFilter = "некорректный параметр фильтрации"

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query: start_date, end_date (обязательные), category_id, min_capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if handlers.RespondBookingRejection(w, err) {
			h.logger.Warn("GET /rooms/available - Request rejected: %v", err)
			return
		}
		h.logger.Error("GET /rooms/available - Failed to find rooms: start=%s, end=%s, error=%v",
			req.StartDate, req.EndDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/available - %d rooms available for %s - %s", len(result.Rooms), result.StartDate, result.EndDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
