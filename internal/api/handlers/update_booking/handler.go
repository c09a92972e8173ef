package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID       = "некорректный ID бронирования"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidRoomIDs         = "некорректный список комнат: ожидаются положительные ID через запятую или списком"
	msgBookingNotFound        = "бронирование не найдено"
	msgConcurrentModification = "бронирование было изменено параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{bookingId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		if handlers.IsRoomIDsError(err) {
			handlers.RespondBadRequest(w, msgInvalidRoomIDs)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondBadRequest(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrConcurrentModification):
			h.logger.Warn("PUT /bookings/%d - Concurrent modification", bookingID)
			handlers.RespondConflict(w, msgConcurrentModification)

		case handlers.RespondBookingRejection(w, err):
			h.logger.Warn("PUT /bookings/%d - Booking rejected: rooms=%s, error=%v", bookingID, req.RoomIDs, err)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully: cost=%s", bookingID, result.Cost)
	handlers.RespondJSON(w, http.StatusOK, result)
}
