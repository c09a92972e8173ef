package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

// ListRooms возвращает комнаты с фильтрацией по категории и вместимости
func (s *Service) ListRooms(ctx context.Context, req *models.ListRoomsRequest) ([]*models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetRoom возвращает комнату по ID
func (s *Service) GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRoomError("GetRoom", id, err)
	}

	return models.FromDomainRoom(room), nil
}

// CreateRoom создает комнату
func (s *Service) CreateRoom(ctx context.Context, req *models.RoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: number=%d, category=%s, capacity=%d", req.Number, req.CategoryID, req.Capacity)

	if err := validateRoom(req); err != nil {
		s.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, &domain.Room{
		Number:     req.Number,
		CategoryID: req.CategoryID,
		Capacity:   req.Capacity,
	})
	if err != nil {
		return nil, s.mapRoomError("CreateRoom", 0, err)
	}

	s.logger.Info("CreateRoom: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// UpdateRoom изменяет номер, категорию и вместимость комнаты
// Стоимость уже созданных бронирований не меняется
func (s *Service) UpdateRoom(ctx context.Context, id int64, req *models.RoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateRoom: id=%d, number=%d, category=%s, capacity=%d", id, req.Number, req.CategoryID, req.Capacity)

	if err := validateRoom(req); err != nil {
		s.logger.Warn("UpdateRoom: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.roomRepo.Update(ctx, &domain.Room{
		ID:         id,
		Number:     req.Number,
		CategoryID: req.CategoryID,
		Capacity:   req.Capacity,
	})
	if err != nil {
		return nil, s.mapRoomError("UpdateRoom", id, err)
	}

	s.logger.Info("UpdateRoom: successfully updated room id=%d", id)
	return models.FromDomainRoom(updated), nil
}

// DeleteRoom удаляет комнату, если на нее не ссылается ни одно бронирование
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRoom: id=%d", id)

	inUse, err := s.roomRepo.CountRoomBookings(ctx, id)
	if err != nil {
		s.logger.Error("DeleteRoom: failed to count bookings of room id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRoom - count bookings: %v", ErrInternal, err)
	}
	if inUse > 0 {
		s.logger.Warn("DeleteRoom: room id=%d is used by %d bookings", id, inUse)
		return ErrRoomInUse
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return s.mapRoomError("DeleteRoom", id, err)
	}

	s.logger.Info("DeleteRoom: successfully deleted room id=%d", id)
	return nil
}

func (s *Service) mapRoomError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, roomRepo.ErrRoomNotFound):
		s.logger.Warn("%s: room id=%d not found", op, id)
		return fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
	case errors.Is(err, roomRepo.ErrRoomNumberTaken):
		s.logger.Warn("%s: room number already taken", op)
		return ErrRoomNumberTaken
	case errors.Is(err, roomRepo.ErrCategoryNotFound):
		s.logger.Warn("%s: category of room does not exist", op)
		return ErrCategoryNotFound
	case errors.Is(err, roomRepo.ErrRoomInUse):
		s.logger.Warn("%s: room id=%d is used by bookings", op, id)
		return ErrRoomInUse
	default:
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// validateRoom проверяет поля комнаты
func validateRoom(req *models.RoomRequest) error {
	if req.Number <= 0 {
		return fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}

	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if req.CategoryID == "" {
		return fmt.Errorf("%w: category_id is required", ErrInvalidInput)
	}

	return nil
}
