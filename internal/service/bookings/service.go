package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований
// Создание и изменение проходят проверку движка бронирования и живут в usecase
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с номерами комнат
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	numbers, err := s.bookingRepo.GetRoomNumbers(ctx, []int64{id})
	if err != nil {
		s.logger.Error("GetByID: failed to get room numbers for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - room numbers: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, numbers[id]), nil
}

// List получает бронирования с фильтрацией
//
// Примеры использования:
// - Все бронирования: List(ctx, &ListBookingsRequest{})
// - Бронирования гостя: указать Name и Surname
// - Бронирования комнаты: указать RoomNumber
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	numbers, err := s.bookingRepo.GetRoomNumbers(ctx, ids)
	if err != nil {
		s.logger.Error("List: failed to get room numbers: %v", err)
		return nil, fmt.Errorf("%w: List - room numbers: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, numbers), nil
}

// Delete удаляет бронирование вместе со связями с комнатами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.DeleteRoomBookings(txCtx, id); err != nil {
			s.logger.Error("Delete: failed to delete room bookings of booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - room bookings: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Delete: booking id=%d not found", id)
				return fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
			}
			s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Duration возвращает длительность бронирования в днях
func (s *Service) Duration(ctx context.Context, id int64) (*models.DurationResponse, error) {
	booking, err := s.getBooking(ctx, "Duration", id)
	if err != nil {
		return nil, err
	}

	return &models.DurationResponse{Duration: booking.Duration()}, nil
}

// Cost возвращает сохраненную стоимость бронирования
// Стоимость не пересчитывается при изменении цен категорий
func (s *Service) Cost(ctx context.Context, id int64) (*models.CostResponse, error) {
	booking, err := s.getBooking(ctx, "Cost", id)
	if err != nil {
		return nil, err
	}

	return &models.CostResponse{Cost: booking.Cost}, nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}
