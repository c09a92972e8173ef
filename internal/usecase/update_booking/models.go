package update_booking

import "github.com/m04kA/SMC-ReservationService/pkg/roomids"

// Request модель запроса на изменение бронирования
// Все поля заменяют текущие значения, связи с комнатами пересоздаются
type Request struct {
	BookingID      int64
	StartDate      string
	EndDate        string
	Name           string
	Surname        string
	NumberOfPeople int
	RoomIDs        roomids.List
}
