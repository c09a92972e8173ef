package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// CategoryRequest запрос на создание или изменение категории
// При изменении ID берется из пути запроса
type CategoryRequest struct {
	ID    string          `json:"id"`
	Price decimal.Decimal `json:"price"`
	Name  string          `json:"name"`
}

// RoomRequest запрос на создание или изменение комнаты
type RoomRequest struct {
	Number     int    `json:"number"`
	CategoryID string `json:"category_id"`
	Capacity   int    `json:"capacity"`
}

// ListRoomsRequest фильтры списка комнат
type ListRoomsRequest struct {
	CategoryID  *string
	MinCapacity *int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() domain.RoomsFilter {
	return domain.RoomsFilter{
		CategoryID:  r.CategoryID,
		MinCapacity: r.MinCapacity,
	}
}

// Response модели

// CategoryResponse категория комнат
type CategoryResponse struct {
	ID        string          `json:"id"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RoomResponse комната
type RoomResponse struct {
	ID         int64     `json:"id"`
	Number     int       `json:"number"`
	CategoryID string    `json:"category_id"`
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Converters

// FromDomainCategory конвертирует domain.RoomCategory в CategoryResponse
func FromDomainCategory(c *domain.RoomCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Price:     c.Price,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainCategoryList конвертирует список категорий
func FromDomainCategoryList(categories []*domain.RoomCategory) []*CategoryResponse {
	result := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, FromDomainCategory(c))
	}
	return result
}

// FromDomainRoom конвертирует domain.Room в RoomResponse
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:         r.ID,
		Number:     r.Number,
		CategoryID: r.CategoryID,
		Capacity:   r.Capacity,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список комнат
func FromDomainRoomList(rooms []*domain.Room) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, FromDomainRoom(r))
	}
	return result
}
