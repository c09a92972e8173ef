package update_booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/roomids"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var today = types.MustParseDate("2030-06-01")

// seededStore: бронирование 10 на комнаты 1 и 2, бронирование 11 на комнату 3
func seededStore() *memoryStore {
	store := &memoryStore{
		prices: map[string]decimal.Decimal{"A": decimal.NewFromInt(300), "B": decimal.NewFromInt(200)},
		rooms: map[int64]*domain.Room{
			1: {ID: 1, Number: 101, CategoryID: "A", Capacity: 5},
			2: {ID: 2, Number: 102, CategoryID: "B", Capacity: 4},
			3: {ID: 3, Number: 103, CategoryID: "B", Capacity: 2},
			4: {ID: 4, Number: 104, CategoryID: "A", Capacity: 3},
		},
		bookings: map[int64]*domain.Booking{
			10: {ID: 10, StartDate: today.AddDays(10), EndDate: today.AddDays(20), Name: "Jan", Surname: "Kowalski",
				NumberOfPeople: 9, Cost: decimal.NewFromInt(5000), RoomIDs: "1,2"},
			11: {ID: 11, StartDate: today.AddDays(5), EndDate: today.AddDays(15), Name: "Anna", Surname: "Nowak",
				NumberOfPeople: 2, Cost: decimal.NewFromInt(2000), RoomIDs: "3"},
		},
		roomBookings: []domain.RoomBooking{
			{RoomID: 1, BookingID: 10},
			{RoomID: 2, BookingID: 10},
			{RoomID: 3, BookingID: 11},
		},
	}
	return store
}

func newTestUseCase(store *memoryStore) (*UseCase, *outcomeRecorder) {
	return newTestUseCaseWithTx(store, inlineTx{})
}

func newTestUseCaseWithTx(store *memoryStore, tx inlineTx) (*UseCase, *outcomeRecorder) {
	recorder := &outcomeRecorder{}
	validator := reservation.NewValidator(store, store, reservation.FixedClock{Date: today}, logger.Nop())
	return NewUseCase(store, store, validator, tx, recorder, logger.Nop()), recorder
}

func TestUseCase_Execute_ReplacesRoomSet(t *testing.T) {
	store := seededStore()
	uc, recorder := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:      10,
		StartDate:      today.AddDays(10).String(),
		EndDate:        today.AddDays(20).String(),
		Name:           "Jan",
		Surname:        "Kowalski",
		NumberOfPeople: 3,
		RoomIDs:        roomids.List{4},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{4}, store.roomsOf(10))
	assert.Equal(t, []int64{3}, store.roomsOf(11))
	assert.Equal(t, "3000", resp.Cost.String())
	assert.Equal(t, "4", resp.RoomIDs)
	assert.Equal(t, []int{104}, resp.RoomNumbers)
	assert.Equal(t, "3000", store.bookings[10].Cost.String())
	assert.Equal(t, []string{"update:accepted"}, recorder.outcomes)
}

func TestUseCase_Execute_OverlapWithItselfAllowed(t *testing.T) {
	store := seededStore()
	uc, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:      10,
		StartDate:      today.AddDays(12).String(),
		EndDate:        today.AddDays(22).String(),
		Name:           "Jan",
		Surname:        "Kowalski",
		NumberOfPeople: 9,
		RoomIDs:        roomids.List{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, today.AddDays(12).String(), store.bookings[10].StartDate.String())
	assert.Equal(t, 10, resp.Duration)
	assert.Equal(t, []int64{1, 2}, store.roomsOf(10))
}

func TestUseCase_Execute_RejectedUpdateKeepsBooking(t *testing.T) {
	store := seededStore()
	uc, recorder := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:      10,
		StartDate:      today.AddDays(10).String(),
		EndDate:        today.AddDays(20).String(),
		Name:           "Jan",
		Surname:        "Kowalski",
		NumberOfPeople: 2,
		RoomIDs:        roomids.List{3},
	})

	assert.ErrorIs(t, err, reservation.ErrRoomUnavailable)
	assert.Equal(t, []int64{1, 2}, store.roomsOf(10))
	assert.Equal(t, "5000", store.bookings[10].Cost.String())
	assert.Equal(t, []string{"update:room_unavailable"}, recorder.outcomes)
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	store := seededStore()
	uc, recorder := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:      99,
		StartDate:      today.AddDays(10).String(),
		EndDate:        today.AddDays(20).String(),
		Name:           "Jan",
		Surname:        "Kowalski",
		NumberOfPeople: 1,
		RoomIDs:        roomids.List{1},
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{"update:not_found"}, recorder.outcomes)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	store := seededStore()
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		StartDate: today.AddDays(10).String(),
		EndDate:   today.AddDays(20).String(),
		Surname:   "Kowalski",
		RoomIDs:   roomids.List{1},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestUseCase_Execute_SerializationFailure(t *testing.T) {
	store := seededStore()
	tx := inlineTx{err: fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure)}
	uc, recorder := newTestUseCaseWithTx(store, tx)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:      10,
		StartDate:      today.AddDays(10).String(),
		EndDate:        today.AddDays(20).String(),
		Name:           "Jan",
		Surname:        "Kowalski",
		NumberOfPeople: 3,
		RoomIDs:        roomids.List{4},
	})

	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Equal(t, []string{"update:conflict"}, recorder.outcomes)
}
