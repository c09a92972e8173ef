package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrInvalidDateRange возвращается, когда даты не разобраны, начало в прошлом или конец не позже начала
	ErrInvalidDateRange = errors.New("reservation: invalid date range")

	// ErrRoomUnavailable возвращается, когда хотя бы одна комната занята в запрошенные даты
	ErrRoomUnavailable = errors.New("reservation: room is not available for the given dates")

	// ErrInsufficientCapacity возвращается, когда суммарная вместимость комнат меньше числа гостей
	ErrInsufficientCapacity = errors.New("reservation: rooms capacity is less than number of people")

	// ErrNotFound общий вид ошибок "не найдено" (комната, категория, бронирование)
	ErrNotFound = domain.ErrNotFound

	// ErrInvalidInput общий вид ошибок некорректного запроса
	ErrInvalidInput = domain.ErrInvalidInput

	// ErrNoRooms возвращается, когда в бронировании нет ни одной комнаты
	ErrNoRooms = fmt.Errorf("%w: booking must contain at least one room", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках (хранилище недоступно и т.п.)
	ErrInternal = errors.New("reservation: internal error")
)

// Метки исхода проверки бронирования для метрик
const (
	OutcomeAccepted             = "accepted"
	OutcomeInvalidDateRange     = "invalid_date_range"
	OutcomeRoomUnavailable      = "room_unavailable"
	OutcomeInsufficientCapacity = "insufficient_capacity"
	OutcomeNotFound             = "not_found"
	OutcomeInvalidInput         = "invalid_input"
	OutcomeConflict             = "conflict"
	OutcomeError                = "error"
)

// IsRejection сообщает, что err - отказ по входным данным пользователя, а не внутренняя ошибка
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrRoomUnavailable) ||
		errors.Is(err, ErrInsufficientCapacity) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidInput)
}

// Outcome возвращает метку исхода для err (nil - accepted)
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, ErrInvalidDateRange):
		return OutcomeInvalidDateRange
	case errors.Is(err, ErrRoomUnavailable):
		return OutcomeRoomUnavailable
	case errors.Is(err, ErrInsufficientCapacity):
		return OutcomeInsufficientCapacity
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrInvalidInput):
		return OutcomeInvalidInput
	default:
		return OutcomeError
	}
}
