package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// ListBookingsRequest фильтры списка бронирований, все поля опциональны
type ListBookingsRequest struct {
	StartDate      *types.Date
	EndDate        *types.Date
	Name           *string
	Surname        *string
	NumberOfPeople *int
	Cost           *decimal.Decimal
	RoomNumber     *int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Name:           r.Name,
		Surname:        r.Surname,
		NumberOfPeople: r.NumberOfPeople,
		Cost:           r.Cost,
		RoomNumber:     r.RoomNumber,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64           `json:"id"`
	StartDate      types.Date      `json:"start_date"`
	EndDate        types.Date      `json:"end_date"`
	Name           string          `json:"name"`
	Surname        string          `json:"surname"`
	NumberOfPeople int             `json:"number_of_people"`
	Cost           decimal.Decimal `json:"cost"`
	RoomIDs        string          `json:"room_ids"`
	RoomNumbers    []int           `json:"room_numbers"`
	Duration       int             `json:"duration"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DurationResponse длительность бронирования в днях
type DurationResponse struct {
	Duration int `json:"duration"`
}

// CostResponse стоимость бронирования
type CostResponse struct {
	Cost decimal.Decimal `json:"cost"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, roomNumbers []int) *BookingResponse {
	if b == nil {
		return nil
	}

	if roomNumbers == nil {
		roomNumbers = []int{}
	}

	return &BookingResponse{
		ID:             b.ID,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Name:           b.Name,
		Surname:        b.Surname,
		NumberOfPeople: b.NumberOfPeople,
		Cost:           b.Cost,
		RoomIDs:        b.RoomIDs,
		RoomNumbers:    roomNumbers,
		Duration:       b.Duration(),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// roomNumbers - номера комнат по ID бронирования
func FromDomainBookingList(bookings []*domain.Booking, roomNumbers map[int64][]int) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, roomNumbers[booking.ID]); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
