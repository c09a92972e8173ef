package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: %w", domain.ErrInvalidInput)

	// ErrConcurrentModification возвращается, когда параллельная транзакция изменила те же комнаты
	// Запрос можно повторить
	ErrConcurrentModification = errors.New("create_booking: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
