package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Booking represents a reservation of one or more rooms for a date range
type Booking struct {
	ID             int64
	StartDate      types.Date
	EndDate        types.Date // Не включается в период проживания
	Name           string
	Surname        string
	NumberOfPeople int
	Cost           decimal.Decimal

	// RoomIDs каноничная строка "1,2,3" для отображения
	// Источником истины о комнатах бронирования являются строки RoomBooking
	RoomIDs string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the number of nights between start and end date
func (b *Booking) Duration() int {
	return b.StartDate.DaysUntil(b.EndDate)
}

// Overlaps reports whether the booking intersects the half-open range [start, end)
// Touching ranges (b.EndDate == start) do not overlap
func (b *Booking) Overlaps(start, end types.Date) bool {
	return b.EndDate.After(start) && b.StartDate.Before(end)
}

// RoomBooking links exactly one room to exactly one booking
type RoomBooking struct {
	ID        int64
	RoomID    int64
	BookingID int64
}

// BookingsFilter фильтр списка бронирований
// Все поля опциональны, nil - без ограничения
type BookingsFilter struct {
	StartDate      *types.Date
	EndDate        *types.Date
	Name           *string
	Surname        *string
	NumberOfPeople *int
	Cost           *decimal.Decimal
	RoomNumber     *int // Только бронирования, содержащие комнату с этим номером
}
