package get_available_rooms

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
}

// RoomQuoter проверка дат и оценка отдельной комнаты (reservation.Validator)
type RoomQuoter interface {
	ValidateDateRange(rawStart, rawEnd string) (types.Date, types.Date, error)
	Quote(ctx context.Context, room *domain.Room, start, end types.Date) (decimal.Decimal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
