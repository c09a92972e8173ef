package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomCategory represents a class of rooms sharing one nightly price
type RoomCategory struct {
	ID    string          // Короткий код категории (например, "A")
	Price decimal.Decimal // Цена за ночь
	Name  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room represents a bookable hotel room
type Room struct {
	ID         int64
	Number     int
	CategoryID string
	Capacity   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomsFilter фильтр для получения списка комнат
type RoomsFilter struct {
	CategoryID  *string // Только комнаты указанной категории
	MinCapacity *int    // Только комнаты вместимостью не меньше указанной
}
