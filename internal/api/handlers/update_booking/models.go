package update_booking

import (
	updateBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/roomids"
)

// UpdateBookingRequest HTTP request model
// Бронирование заменяется целиком, cost пересчитывается сервером
type UpdateBookingRequest struct {
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	Name           string       `json:"name"`
	Surname        string       `json:"surname"`
	NumberOfPeople int          `json:"number_of_people"`
	RoomIDs        roomids.List `json:"room_ids"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		BookingID:      bookingID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Name:           r.Name,
		Surname:        r.Surname,
		NumberOfPeople: r.NumberOfPeople,
		RoomIDs:        r.RoomIDs,
	}
}
