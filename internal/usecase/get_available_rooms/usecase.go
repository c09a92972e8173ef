package get_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
)

// UseCase use case для поиска свободных комнат на период
type UseCase struct {
	roomRepo RoomRepository
	quoter   RoomQuoter
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	quoter RoomQuoter,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		quoter:   quoter,
		logger:   logger,
	}
}

// Execute возвращает комнаты, свободные в [start, end), со стоимостью проживания
// Результат не резервирует комнаты: бронирование может получить отказ, если комнату займут раньше
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: start=%s, end=%s", req.StartDate, req.EndDate)

	// 1. Валидация фильтров
	if req.MinCapacity != nil && *req.MinCapacity <= 0 {
		uc.logger.Warn("GetAvailableRooms: min_capacity=%d is not positive", *req.MinCapacity)
		return nil, fmt.Errorf("%w: min_capacity must be positive", ErrInvalidInput)
	}

	// 2. Проверяем даты по тем же правилам, что и при бронировании
	start, end, err := uc.quoter.ValidateDateRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("GetAvailableRooms: date range rejected: %v", err)
		return nil, err
	}

	// 3. Получаем комнаты-кандидаты
	rooms, err := uc.roomRepo.List(ctx, domainFilter(req))
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Оставляем свободные и считаем стоимость
	offers := make([]RoomOffer, 0, len(rooms))
	for _, room := range rooms {
		cost, err := uc.quoter.Quote(ctx, room, start, end)
		if errors.Is(err, reservation.ErrRoomUnavailable) {
			continue
		}
		if err != nil {
			uc.logger.Error("GetAvailableRooms: failed to quote room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to quote room id=%d: %v", ErrInternal, room.ID, err)
		}

		offers = append(offers, RoomOffer{
			ID:         room.ID,
			Number:     room.Number,
			CategoryID: room.CategoryID,
			Capacity:   room.Capacity,
			Cost:       cost,
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms are available for %s - %s", len(offers), len(rooms), start, end)

	return &Response{
		StartDate: start,
		EndDate:   end,
		Duration:  start.DaysUntil(end),
		Rooms:     offers,
	}, nil
}

func domainFilter(req *Request) domain.RoomsFilter {
	return domain.RoomsFilter{
		CategoryID:  req.CategoryID,
		MinCapacity: req.MinCapacity,
	}
}
