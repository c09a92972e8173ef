package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка доступности и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	result, err := uc.execute(ctx, req)
	if errors.Is(err, txmanager.ErrSerializationFailure) {
		uc.logger.Warn("CreateBooking: serialization failure: %v", err)
		err = fmt.Errorf("%w: %v", ErrConcurrentModification, err)
	}
	uc.metrics.IncBookingOutcome(domain.OperationCreateBooking, outcome(err))
	return result, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: start=%s, end=%s, people=%d, rooms=%s",
		req.StartDate, req.EndDate, req.NumberOfPeople, req.RoomIDs)

	// 1. Валидация гостя и списка комнат
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *models.BookingResponse

	// 2. Выполняем проверку и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем комнаты (блокируются до конца транзакции)
		rooms, err := uc.catalog.GetRooms(txCtx, req.RoomIDs.IDs())
		if err != nil {
			uc.logger.Warn("CreateBooking: failed to resolve rooms %s: %v", req.RoomIDs, err)
			return err
		}

		// 2.2. Проверяем даты, доступность, вместимость и считаем стоимость
		desc, err := uc.validator.ValidateAndPrice(txCtx, reservation.Input{
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			NumberOfPeople: req.NumberOfPeople,
			Rooms:          rooms,
		}, nil)
		if err != nil {
			uc.logger.Warn("CreateBooking: booking rejected: %v", err)
			return err
		}

		// 2.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			StartDate:      desc.StartDate,
			EndDate:        desc.EndDate,
			Name:           strings.TrimSpace(req.Name),
			Surname:        strings.TrimSpace(req.Surname),
			NumberOfPeople: desc.NumberOfPeople,
			Cost:           desc.Cost,
			RoomIDs:        req.RoomIDs.String(),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 2.4. Создаем связи с комнатами
		if err := uc.bookingRepo.CreateRoomBookings(txCtx, created.ID, desc.RoomIDs()); err != nil {
			if errors.Is(err, bookingRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room removed while booking id=%d was created", created.ID)
				return fmt.Errorf("%w: room was removed", ErrConcurrentModification)
			}
			uc.logger.Error("CreateBooking: failed to create room bookings for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to create room bookings: %w", ErrInternal, err)
		}

		result = models.FromDomainBooking(created, desc.RoomNumbers())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, cost=%s", result.ID, result.Cost)
	return result, nil
}

func outcome(err error) string {
	if errors.Is(err, ErrConcurrentModification) {
		return reservation.OutcomeConflict
	}
	return reservation.Outcome(err)
}
