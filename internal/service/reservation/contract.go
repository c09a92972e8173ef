package reservation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// BookingFinder порт хранилища бронирований, нужный проверке доступности
type BookingFinder interface {
	FindOverlapping(ctx context.Context, roomID int64, start, end types.Date, excludeID *int64) ([]*domain.Booking, error)
}

// RoomCatalog источник вместимости и цены комнат
type RoomCatalog interface {
	RoomCapacity(room *domain.Room) int
	RoomCategoryPrice(ctx context.Context, room *domain.Room) (decimal.Decimal, error)
}

// Clock источник текущей даты (для тестирования)
type Clock interface {
	Today() types.Date
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
