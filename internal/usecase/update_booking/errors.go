package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда изменяемое бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("update_booking: booking %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("update_booking: %w", domain.ErrInvalidInput)

	// ErrConcurrentModification возвращается, когда параллельная транзакция изменила те же данные
	ErrConcurrentModification = errors.New("update_booking: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
