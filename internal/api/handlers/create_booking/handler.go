package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidRoomIDs         = "некорректный список комнат: ожидаются положительные ID через запятую или списком"
	msgConcurrentModification = "комнаты были изменены параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		if handlers.IsRoomIDsError(err) {
			handlers.RespondBadRequest(w, msgInvalidRoomIDs)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrConcurrentModification):
			h.logger.Warn("POST /bookings - Concurrent modification: rooms=%s", req.RoomIDs)
			handlers.RespondConflict(w, msgConcurrentModification)

		case handlers.RespondBookingRejection(w, err):
			h.logger.Warn("POST /bookings - Booking rejected: rooms=%s, error=%v", req.RoomIDs, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: rooms=%s, error=%v", req.RoomIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, cost=%s", result.ID, result.Cost)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
