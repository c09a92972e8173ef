package rooms

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

type RoomService interface {
	ListRooms(ctx context.Context, req *models.ListRoomsRequest) ([]*models.RoomResponse, error)
	GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error)
	CreateRoom(ctx context.Context, req *models.RoomRequest) (*models.RoomResponse, error)
	UpdateRoom(ctx context.Context, id int64, req *models.RoomRequest) (*models.RoomResponse, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
