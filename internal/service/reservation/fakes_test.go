package reservation

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// memoryBookings возвращает все бронирования комнаты, не фильтруя по датам
type memoryBookings struct {
	byRoom map[int64][]*domain.Booking
	err    error
	calls  int
}

func newMemoryBookings() *memoryBookings {
	return &memoryBookings{byRoom: make(map[int64][]*domain.Booking)}
}

func (m *memoryBookings) add(b *domain.Booking, roomIDs ...int64) {
	for _, id := range roomIDs {
		m.byRoom[id] = append(m.byRoom[id], b)
	}
}

func (m *memoryBookings) FindOverlapping(_ context.Context, roomID int64, _, _ types.Date, _ *int64) ([]*domain.Booking, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.byRoom[roomID], nil
}

type memoryCatalog struct {
	prices map[string]decimal.Decimal
}

func (c *memoryCatalog) RoomCapacity(room *domain.Room) int {
	return room.Capacity
}

func (c *memoryCatalog) RoomCategoryPrice(_ context.Context, room *domain.Room) (decimal.Decimal, error) {
	price, ok := c.prices[room.CategoryID]
	if !ok {
		return decimal.Zero, errors.New("category not found")
	}
	return price, nil
}
