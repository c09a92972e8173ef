package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo BookingRepository
	catalog     RoomCatalog
	validator   BookingValidator
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog RoomCatalog,
	validator BookingValidator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		validator:   validator,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case изменения бронирования
// Бронирование проверяется заново так же, как при создании, но не конфликтует само с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	result, err := uc.execute(ctx, req)
	if errors.Is(err, txmanager.ErrSerializationFailure) {
		uc.logger.Warn("UpdateBooking: serialization failure for booking id=%d: %v", req.BookingID, err)
		err = fmt.Errorf("%w: %v", ErrConcurrentModification, err)
	}

	out := reservation.Outcome(err)
	if errors.Is(err, ErrConcurrentModification) {
		out = reservation.OutcomeConflict
	}
	uc.metrics.IncBookingOutcome(domain.OperationUpdateBooking, out)

	return result, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("UpdateBooking: id=%d, start=%s, end=%s, people=%d, rooms=%s",
		req.BookingID, req.StartDate, req.EndDate, req.NumberOfPeople, req.RoomIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *models.BookingResponse

	// 2. Перепроверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return fmt.Errorf("%w: id=%d", ErrBookingNotFound, req.BookingID)
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.2. Получаем новый набор комнат
		rooms, err := uc.catalog.GetRooms(txCtx, req.RoomIDs.IDs())
		if err != nil {
			uc.logger.Warn("UpdateBooking: failed to resolve rooms %s: %v", req.RoomIDs, err)
			return err
		}

		// 2.3. Проверяем кандидата, исключая само бронирование из проверки доступности
		desc, err := uc.validator.ValidateAndPrice(txCtx, reservation.Input{
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			NumberOfPeople: req.NumberOfPeople,
			Rooms:          rooms,
		}, ptr.Ptr(booking.ID))
		if err != nil {
			uc.logger.Warn("UpdateBooking: booking id=%d rejected: %v", booking.ID, err)
			return err
		}

		// 2.4. Сохраняем новые значения
		booking.StartDate = desc.StartDate
		booking.EndDate = desc.EndDate
		booking.Name = strings.TrimSpace(req.Name)
		booking.Surname = strings.TrimSpace(req.Surname)
		booking.NumberOfPeople = desc.NumberOfPeople
		booking.Cost = desc.Cost
		booking.RoomIDs = req.RoomIDs.String()

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: id=%d", ErrBookingNotFound, booking.ID)
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		// 2.5. Пересоздаем связи с комнатами
		if err := uc.bookingRepo.ReplaceRoomBookings(txCtx, updated.ID, desc.RoomIDs()); err != nil {
			if errors.Is(err, bookingRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateBooking: room removed while booking id=%d was updated", updated.ID)
				return fmt.Errorf("%w: room was removed", ErrConcurrentModification)
			}
			uc.logger.Error("UpdateBooking: failed to replace room bookings for booking id=%d: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to replace room bookings: %w", ErrInternal, err)
		}

		result = models.FromDomainBooking(updated, desc.RoomNumbers())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, cost=%s", result.ID, result.Cost)
	return result, nil
}
