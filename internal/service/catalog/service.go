package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/category"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// Service каталог комнат и категорий
// Отдает вместимость и цену комнат движку бронирования и обслуживает административный CRUD
type Service struct {
	categoryRepo CategoryRepository
	roomRepo     RoomRepository
	logger       Logger
}

// NewService создает новый экземпляр каталога
func NewService(
	categoryRepo CategoryRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		roomRepo:     roomRepo,
		logger:       logger,
	}
}

// RoomCapacity возвращает вместимость комнаты
func (s *Service) RoomCapacity(room *domain.Room) int {
	return room.Capacity
}

// RoomCategoryPrice возвращает цену за ночь категории комнаты
func (s *Service) RoomCategoryPrice(ctx context.Context, room *domain.Room) (decimal.Decimal, error) {
	category, err := s.categoryRepo.GetByID(ctx, room.CategoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("RoomCategoryPrice: category id=%s of room number=%d not found", room.CategoryID, room.Number)
			return decimal.Zero, fmt.Errorf("%w: id=%s", ErrCategoryNotFound, room.CategoryID)
		}
		s.logger.Error("RoomCategoryPrice: repository error for category id=%s: %v", room.CategoryID, err)
		return decimal.Zero, fmt.Errorf("%w: RoomCategoryPrice - repository error: %w", ErrInternal, err)
	}

	return category.Price, nil
}

// GetRooms возвращает комнаты в порядке переданных ID
// Если хотя бы одной комнаты нет, возвращает ErrRoomNotFound
func (s *Service) GetRooms(ctx context.Context, ids []int64) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0, len(ids))

	for _, id := range ids {
		room, err := s.roomRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				s.logger.Warn("GetRooms: room id=%d not found", id)
				return nil, fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
			}
			s.logger.Error("GetRooms: repository error for room id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: GetRooms - repository error: %w", ErrInternal, err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}
