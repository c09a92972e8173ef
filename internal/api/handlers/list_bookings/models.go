package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ParseFilters разбирает query параметры фильтрации
// Пустые параметры не участвуют в фильтрации
func ParseFilters(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := strings.TrimSpace(query.Get("start_date")); v != "" {
		date, err := types.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("start_date: %w", err)
		}
		req.StartDate = &date
	}

	if v := strings.TrimSpace(query.Get("end_date")); v != "" {
		date, err := types.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("end_date: %w", err)
		}
		req.EndDate = &date
	}

	if v := strings.TrimSpace(query.Get("name")); v != "" {
		req.Name = ptr.Ptr(v)
	}

	if v := strings.TrimSpace(query.Get("surname")); v != "" {
		req.Surname = ptr.Ptr(v)
	}

	if v := strings.TrimSpace(query.Get("number_of_people")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("number_of_people: %w", err)
		}
		req.NumberOfPeople = &n
	}

	if v := strings.TrimSpace(query.Get("cost")); v != "" {
		cost, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
		req.Cost = &cost
	}

	if v := strings.TrimSpace(query.Get("room_number")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("room_number: %w", err)
		}
		req.RoomNumber = &n
	}

	return req, nil
}
