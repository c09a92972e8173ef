package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/roomids"
)

const (
	msgInvalidDateRange     = "некорректный диапазон дат: заезд не раньше сегодняшнего дня, выезд позже заезда"
	msgRoomUnavailable      = "комнаты заняты на выбранные даты"
	msgInsufficientCapacity = "вместимость комнат меньше числа гостей"
	msgNoRooms              = "бронирование должно содержать хотя бы одну комнату"
	msgRoomNotFound         = "комната не найдена"
	msgCategoryNotFound     = "категория комнаты не найдена"
	msgBookingNotFound      = "бронирование не найдено"
	msgNameRequired         = "не указано имя гостя"
	msgNameTooLong          = "имя гостя длиннее 100 символов"
	msgSurnameRequired      = "не указана фамилия гостя"
	msgSurnameTooLong       = "фамилия гостя длиннее 100 символов"
	msgRoomIDsTooLong       = "список комнат длиннее 100 символов"
	msgInvalidInput         = "некорректные данные запроса"
)

// RespondBookingRejection отвечает 400 на отказ движка бронирования
// Возвращает false, если err не является отказом (ответ не записан)
func RespondBookingRejection(w http.ResponseWriter, err error) bool {
	if !reservation.IsRejection(err) {
		return false
	}

	switch {
	case errors.Is(err, reservation.ErrInvalidDateRange):
		RespondBadRequest(w, msgInvalidDateRange)
	case errors.Is(err, reservation.ErrRoomUnavailable):
		RespondBadRequest(w, msgRoomUnavailable)
	case errors.Is(err, reservation.ErrInsufficientCapacity):
		RespondBadRequest(w, msgInsufficientCapacity)
	case errors.Is(err, reservation.ErrNoRooms):
		RespondBadRequest(w, msgNoRooms)
	case errors.Is(err, catalog.ErrRoomNotFound):
		RespondBadRequest(w, msgRoomNotFound)
	case errors.Is(err, catalog.ErrCategoryNotFound):
		RespondBadRequest(w, msgCategoryNotFound)
	case errors.Is(err, reservation.ErrNotFound):
		RespondBadRequest(w, msgBookingNotFound)
	case errors.Is(err, domain.ErrNameRequired):
		RespondBadRequest(w, msgNameRequired)
	case errors.Is(err, domain.ErrNameTooLong):
		RespondBadRequest(w, msgNameTooLong)
	case errors.Is(err, domain.ErrSurnameRequired):
		RespondBadRequest(w, msgSurnameRequired)
	case errors.Is(err, domain.ErrSurnameTooLong):
		RespondBadRequest(w, msgSurnameTooLong)
	case errors.Is(err, domain.ErrRoomIDsTooLong):
		RespondBadRequest(w, msgRoomIDsTooLong)
	default:
		RespondBadRequest(w, msgInvalidInput)
	}
	return true
}

// IsRoomIDsError сообщает, что тело запроса отклонено из-за списка room_ids
func IsRoomIDsError(err error) bool {
	return errors.Is(err, roomids.ErrEmpty) ||
		errors.Is(err, roomids.ErrInvalidID) ||
		errors.Is(err, roomids.ErrInvalidFormat)
}
