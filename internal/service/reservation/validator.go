package reservation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Input кандидат в бронирование
type Input struct {
	StartDate      string // YYYY-MM-DD
	EndDate        string // YYYY-MM-DD
	NumberOfPeople int
	Rooms          []*domain.Room
}

// Descriptor принятое и оцененное бронирование, готовое к сохранению
type Descriptor struct {
	StartDate      types.Date
	EndDate        types.Date
	NumberOfPeople int
	Rooms          []*domain.Room
	Cost           decimal.Decimal
	Duration       int
}

// RoomIDs возвращает ID комнат в порядке запроса
func (d *Descriptor) RoomIDs() []int64 {
	ids := make([]int64, 0, len(d.Rooms))
	for _, room := range d.Rooms {
		ids = append(ids, room.ID)
	}
	return ids
}

// RoomNumbers возвращает номера комнат в порядке запроса
func (d *Descriptor) RoomNumbers() []int {
	numbers := make([]int, 0, len(d.Rooms))
	for _, room := range d.Rooms {
		numbers = append(numbers, room.Number)
	}
	return numbers
}

// Validator решает, можно ли принять бронирование, и считает его стоимость
// Ничего не изменяет в хранилище
type Validator struct {
	availability *AvailabilityChecker
	capacity     *CapacityChecker
	cost         *CostCalculator
	clock        Clock
	logger       Logger
}

// NewValidator создает валидатор бронирований
func NewValidator(
	bookings BookingFinder,
	catalog RoomCatalog,
	clock Clock,
	logger Logger,
) *Validator {
	return &Validator{
		availability: NewAvailabilityChecker(bookings),
		capacity:     NewCapacityChecker(catalog),
		cost:         NewCostCalculator(catalog),
		clock:        clock,
		logger:       logger,
	}
}

// ValidateAndPrice проверяет кандидата по порядку: даты, наличие комнат, доступность, вместимость
// Первая непройденная проверка возвращает свою ошибку, остальные не выполняются
// excludeBookingID - изменяемое бронирование, которое не должно конфликтовать само с собой
func (v *Validator) ValidateAndPrice(ctx context.Context, in Input, excludeBookingID *int64) (*Descriptor, error) {
	// 1. Диапазон дат
	start, end, err := v.ValidateDateRange(in.StartDate, in.EndDate)
	if err != nil {
		v.logger.Warn("ValidateAndPrice: date range rejected: %v", err)
		return nil, err
	}

	// 2. Хотя бы одна комната и положительное число гостей
	if len(in.Rooms) == 0 {
		v.logger.Warn("ValidateAndPrice: no rooms requested")
		return nil, ErrNoRooms
	}
	if in.NumberOfPeople <= 0 {
		v.logger.Warn("ValidateAndPrice: number_of_people=%d is not positive", in.NumberOfPeople)
		return nil, fmt.Errorf("%w: number_of_people must be positive", ErrInvalidInput)
	}

	// 3. Доступность
	available, err := v.availability.CheckRoomsAvailability(ctx, in.Rooms, start, end, excludeBookingID)
	if err != nil {
		v.logger.Error("ValidateAndPrice: availability check failed: %v", err)
		return nil, err
	}
	if !available {
		v.logger.Warn("ValidateAndPrice: rooms are not available for %s - %s", start, end)
		return nil, ErrRoomUnavailable
	}

	// 4. Вместимость
	if !v.capacity.CheckRoomsCapacity(in.Rooms, in.NumberOfPeople) {
		v.logger.Warn("ValidateAndPrice: rooms cannot host %d people", in.NumberOfPeople)
		return nil, ErrInsufficientCapacity
	}

	// 5. Стоимость
	duration := start.DaysUntil(end)
	cost, err := v.cost.CalculateCost(ctx, in.Rooms, duration)
	if err != nil {
		v.logger.Error("ValidateAndPrice: cost calculation failed: %v", err)
		return nil, err
	}

	return &Descriptor{
		StartDate:      start,
		EndDate:        end,
		NumberOfPeople: in.NumberOfPeople,
		Rooms:          in.Rooms,
		Cost:           cost,
		Duration:       duration,
	}, nil
}

// Quote проверяет, свободна ли одна комната в [start, end), и считает ее стоимость за период
// Занятая комната - ErrRoomUnavailable
func (v *Validator) Quote(ctx context.Context, room *domain.Room, start, end types.Date) (decimal.Decimal, error) {
	available, err := v.availability.IsRoomAvailable(ctx, room, start, end, nil)
	if err != nil {
		return decimal.Zero, err
	}
	if !available {
		return decimal.Zero, fmt.Errorf("%w: room id=%d", ErrRoomUnavailable, room.ID)
	}

	return v.cost.CalculateCost(ctx, []*domain.Room{room}, start.DaysUntil(end))
}

// ValidateDateRange разбирает даты и проверяет start >= today, end > start
func (v *Validator) ValidateDateRange(rawStart, rawEnd string) (types.Date, types.Date, error) {
	start, err := types.ParseDate(rawStart)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: start_date: %v", ErrInvalidDateRange, err)
	}

	end, err := types.ParseDate(rawEnd)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: end_date: %v", ErrInvalidDateRange, err)
	}

	today := v.clock.Today()
	if start.Before(today) {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: start_date %s is before today %s", ErrInvalidDateRange, start, today)
	}

	if !end.After(start) {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: end_date %s must be after start_date %s", ErrInvalidDateRange, end, start)
	}

	return start, end, nil
}
