package update_booking

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type memoryStore struct {
	prices       map[string]decimal.Decimal
	rooms        map[int64]*domain.Room
	bookings     map[int64]*domain.Booking
	roomBookings []domain.RoomBooking
}

func (s *memoryStore) GetRooms(_ context.Context, ids []int64) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0, len(ids))
	for _, id := range ids {
		room, ok := s.rooms[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", catalog.ErrRoomNotFound, id)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *memoryStore) RoomCapacity(room *domain.Room) int {
	return room.Capacity
}

func (s *memoryStore) RoomCategoryPrice(_ context.Context, room *domain.Room) (decimal.Decimal, error) {
	return s.prices[room.CategoryID], nil
}

func (s *memoryStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *memoryStore) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if _, ok := s.bookings[booking.ID]; !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	stored := *booking
	s.bookings[booking.ID] = &stored
	return booking, nil
}

func (s *memoryStore) ReplaceRoomBookings(_ context.Context, bookingID int64, roomIDs []int64) error {
	kept := s.roomBookings[:0]
	for _, rb := range s.roomBookings {
		if rb.BookingID != bookingID {
			kept = append(kept, rb)
		}
	}
	s.roomBookings = kept

	for _, roomID := range roomIDs {
		s.roomBookings = append(s.roomBookings, domain.RoomBooking{RoomID: roomID, BookingID: bookingID})
	}
	return nil
}

func (s *memoryStore) FindOverlapping(_ context.Context, roomID int64, start, end types.Date, excludeID *int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, rb := range s.roomBookings {
		if rb.RoomID != roomID {
			continue
		}
		b := s.bookings[rb.BookingID]
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Overlaps(start, end) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memoryStore) roomsOf(bookingID int64) []int64 {
	ids := make([]int64, 0)
	for _, rb := range s.roomBookings {
		if rb.BookingID == bookingID {
			ids = append(ids, rb.RoomID)
		}
	}
	return ids
}

type inlineTx struct {
	err error
}

func (t inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return t.err
}

type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) IncBookingOutcome(operation, outcome string) {
	r.outcomes = append(r.outcomes, operation+":"+outcome)
}
