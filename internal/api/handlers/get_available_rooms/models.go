package get_available_rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	getAvailableRooms "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_rooms"
)

// ParseRequest разбирает query параметры start_date, end_date, category_id, min_capacity
func ParseRequest(query url.Values) (*getAvailableRooms.Request, error) {
	req := &getAvailableRooms.Request{
		StartDate: strings.TrimSpace(query.Get("start_date")),
		EndDate:   strings.TrimSpace(query.Get("end_date")),
	}

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
