package create_booking

import "github.com/m04kA/SMC-ReservationService/pkg/roomids"

// Request модель запроса на создание бронирования
// Стоимость не принимается от клиента и всегда считается сервером
type Request struct {
	StartDate      string       // Дата заезда, YYYY-MM-DD
	EndDate        string       // Дата выезда, YYYY-MM-DD
	Name           string       // Имя гостя
	Surname        string       // Фамилия гостя
	NumberOfPeople int          // Число гостей
	RoomIDs        roomids.List // Нормализованный список комнат
}
