package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Даты, число гостей и наличие комнат проверяет движок бронирования
func validateRequest(req *Request) error {
	if err := domain.ValidateGuest(req.Name, req.Surname, req.RoomIDs.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
