package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateRoomBookings(ctx context.Context, bookingID int64, roomIDs []int64) error
}

// RoomCatalog интерфейс каталога комнат
type RoomCatalog interface {
	GetRooms(ctx context.Context, ids []int64) ([]*domain.Room, error)
}

// BookingValidator проверка и оценка кандидата в бронирование
type BookingValidator interface {
	ValidateAndPrice(ctx context.Context, in reservation.Input, excludeBookingID *int64) (*reservation.Descriptor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчик исходов проверки бронирований
type MetricsRecorder interface {
	IncBookingOutcome(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
