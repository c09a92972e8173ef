package reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// AvailabilityChecker проверяет, что комнаты не заняты другими бронированиями
type AvailabilityChecker struct {
	bookings BookingFinder
}

// NewAvailabilityChecker создает проверку доступности поверх хранилища бронирований
func NewAvailabilityChecker(bookings BookingFinder) *AvailabilityChecker {
	return &AvailabilityChecker{bookings: bookings}
}

// IsRoomAvailable проверяет, что комната свободна в полуинтервале [start, end)
// Бронирование, заканчивающееся в день start, не мешает; excludeBookingID не учитывается
func (c *AvailabilityChecker) IsRoomAvailable(ctx context.Context, room *domain.Room, start, end types.Date, excludeBookingID *int64) (bool, error) {
	overlapping, err := c.bookings.FindOverlapping(ctx, room.ID, start, end, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("%w: IsRoomAvailable - find overlapping for room id=%d: %w", ErrInternal, room.ID, err)
	}

	for _, b := range overlapping {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if b.Overlaps(start, end) {
			return false, nil
		}
	}

	return true, nil
}

// CheckRoomsAvailability проверяет доступность каждой комнаты, останавливаясь на первой занятой
// Пустой набор комнат считается доступным
func (c *AvailabilityChecker) CheckRoomsAvailability(ctx context.Context, rooms []*domain.Room, start, end types.Date, excludeBookingID *int64) (bool, error) {
	for _, room := range rooms {
		available, err := c.IsRoomAvailable(ctx, room, start, end, excludeBookingID)
		if err != nil {
			return false, err
		}
		if !available {
			return false, nil
		}
	}

	return true, nil
}
