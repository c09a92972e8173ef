package rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []*models.RoomResponse `json:"rooms"`
}

// ParseFilters разбирает query параметры category_id и min_capacity
func ParseFilters(query url.Values) (*models.ListRoomsRequest, error) {
	req := &models.ListRoomsRequest{}

	if v := strings.TrimSpace(query.Get("category_id")); v != "" {
		req.CategoryID = &v
	}

	if v := strings.TrimSpace(query.Get("min_capacity")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("min_capacity: %w", err)
		}
		req.MinCapacity = &n
	}

	return req, nil
}
