package catalog

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CategoryRepository интерфейс репозитория категорий комнат
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.RoomCategory) (*domain.RoomCategory, error)
	GetByID(ctx context.Context, id string) (*domain.RoomCategory, error)
	List(ctx context.Context) ([]*domain.RoomCategory, error)
	Update(ctx context.Context, c *domain.RoomCategory) (*domain.RoomCategory, error)
	Delete(ctx context.Context, id string) error
	CountRooms(ctx context.Context, id string) (int, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
	CountRoomBookings(ctx context.Context, id int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
