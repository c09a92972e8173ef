package create_booking

import (
	"context"
	"fmt"
	"strings"
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

func newTestUseCase(store *memoryStore, tx inlineTx) (*UseCase, *outcomeRecorder) {
	recorder := &outcomeRecorder{}
	validator := reservation.NewValidator(store, store, reservation.FixedClock{Date: today}, logger.Nop())
	return NewUseCase(store, store, validator, tx, recorder, logger.Nop()), recorder
}

func seededStore() *memoryStore {
	store := newMemoryStore()
	store.prices["A"] = decimal.NewFromInt(300)
	store.prices["B"] = decimal.NewFromInt(200)
	store.rooms[1] = &domain.Room{ID: 1, Number: 101, CategoryID: "A", Capacity: 5}
	store.rooms[2] = &domain.Room{ID: 2, Number: 102, CategoryID: "B", Capacity: 4}
	store.nextID = 100
	return store
}

func validRequest() *Request {
	return &Request{
		StartDate:      today.AddDays(10).String(),
		EndDate:        today.AddDays(20).String(),
		Name:           "Jan",
		Surname:        "Kowalski",
		NumberOfPeople: 9,
		RoomIDs:        roomids.List{1, 2},
	}
}

func TestUseCase_Execute_CreatesBookingWithRoomAssociations(t *testing.T) {
	store := seededStore()
	uc, recorder := newTestUseCase(store, inlineTx{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "5000", resp.Cost.String())
	assert.Equal(t, 10, resp.Duration)
	assert.Equal(t, "1,2", resp.RoomIDs)
	assert.Equal(t, []int{101, 102}, resp.RoomNumbers)
	assert.Equal(t, []int64{1, 2}, store.roomBookingsOf(resp.ID))
	assert.Len(t, store.roomBookings, 2)
	assert.Equal(t, []string{"create:accepted"}, recorder.outcomes)
}

func TestUseCase_Execute_RejectsOverlap(t *testing.T) {
	store := seededStore()
	uc, recorder := newTestUseCase(store, inlineTx{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.StartDate = today.AddDays(19).String()
	second.EndDate = today.AddDays(25).String()
	second.RoomIDs = roomids.List{2}
	second.NumberOfPeople = 1

	_, err = uc.Execute(context.Background(), second)

	assert.ErrorIs(t, err, reservation.ErrRoomUnavailable)
	assert.Len(t, store.bookings, 1)
	assert.Equal(t, "create:room_unavailable", recorder.outcomes[1])
}

func TestUseCase_Execute_AdjacentBookingAccepted(t *testing.T) {
	store := seededStore()
	uc, _ := newTestUseCase(store, inlineTx{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	next := validRequest()
	next.StartDate = today.AddDays(20).String()
	next.EndDate = today.AddDays(21).String()

	resp, err := uc.Execute(context.Background(), next)

	require.NoError(t, err)
	assert.Equal(t, "500", resp.Cost.String())
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(req *Request)
		wantErr error
		outcome string
	}{
		{
			name:    "missing name",
			modify:  func(req *Request) { req.Name = " " },
			wantErr: domain.ErrNameRequired,
			outcome: "invalid_input",
		},
		{
			name:    "surname too long",
			modify:  func(req *Request) { req.Surname = strings.Repeat("x", domain.MaxGuestNameLength+1) },
			wantErr: domain.ErrSurnameTooLong,
			outcome: "invalid_input",
		},
		{
			name:    "unknown room",
			modify:  func(req *Request) { req.RoomIDs = roomids.List{1, 42} },
			wantErr: domain.ErrNotFound,
			outcome: "not_found",
		},
		{
			name:    "start in the past",
			modify:  func(req *Request) { req.StartDate = today.AddDays(-1).String() },
			wantErr: reservation.ErrInvalidDateRange,
			outcome: "invalid_date_range",
		},
		{
			name:    "too many people",
			modify:  func(req *Request) { req.NumberOfPeople = 10 },
			wantErr: reservation.ErrInsufficientCapacity,
			outcome: "insufficient_capacity",
		},
		{
			name:    "no rooms",
			modify:  func(req *Request) { req.RoomIDs = nil },
			wantErr: reservation.ErrNoRooms,
			outcome: "invalid_input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore()
			uc, recorder := newTestUseCase(store, inlineTx{})
			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, reservation.IsRejection(err))
			assert.Empty(t, store.bookings)
			assert.Equal(t, []string{"create:" + tt.outcome}, recorder.outcomes)
		})
	}
}

func TestUseCase_Execute_SerializationFailure(t *testing.T) {
	store := seededStore()
	tx := inlineTx{err: fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure)}
	uc, recorder := newTestUseCase(store, tx)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Equal(t, []string{"create:conflict"}, recorder.outcomes)
}
