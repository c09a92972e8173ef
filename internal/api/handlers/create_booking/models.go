package create_booking

import (
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/roomids"
)

// CreateBookingRequest HTTP request model
// Поле cost, если передано, игнорируется
type CreateBookingRequest struct {
	StartDate      string       `json:"start_date"` // "2025-10-15"
	EndDate        string       `json:"end_date"`   // "2025-10-20"
	Name           string       `json:"name"`
	Surname        string       `json:"surname"`
	NumberOfPeople int          `json:"number_of_people"`
	RoomIDs        roomids.List `json:"room_ids"` // "1,2" или [1, 2]
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Name:           r.Name,
		Surname:        r.Surname,
		NumberOfPeople: r.NumberOfPeople,
		RoomIDs:        r.RoomIDs,
	}
}
