package get_available_rooms

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса свободных комнат
type Request struct {
	StartDate   string  // Дата заезда, YYYY-MM-DD
	EndDate     string  // Дата выезда, YYYY-MM-DD
	CategoryID  *string // Только комнаты категории
	MinCapacity *int    // Только комнаты вместимостью не меньше
}

// Response свободные комнаты на период
type Response struct {
	StartDate types.Date  `json:"start_date"`
	EndDate   types.Date  `json:"end_date"`
	Duration  int         `json:"duration"`
	Rooms     []RoomOffer `json:"rooms"`
}

// RoomOffer свободная комната и ее стоимость за весь период
type RoomOffer struct {
	ID         int64           `json:"id"`
	Number     int             `json:"number"`
	CategoryID string          `json:"category_id"`
	Capacity   int             `json:"capacity"`
	Cost       decimal.Decimal `json:"cost"`
}
