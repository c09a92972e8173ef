package reservation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CostCalculator считает стоимость бронирования по ценам категорий комнат
type CostCalculator struct {
	catalog RoomCatalog
}

func NewCostCalculator(catalog RoomCatalog) *CostCalculator {
	return &CostCalculator{catalog: catalog}
}

// CalculateCost возвращает durationDays * сумму цен за ночь всех комнат
func (c *CostCalculator) CalculateCost(ctx context.Context, rooms []*domain.Room, durationDays int) (decimal.Decimal, error) {
	if durationDays <= 0 {
		return decimal.Zero, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidDateRange, durationDays)
	}

	perNight := decimal.Zero
	for _, room := range rooms {
		price, err := c.catalog.RoomCategoryPrice(ctx, room)
		if err != nil {
			return decimal.Zero, err
		}
		perNight = perNight.Add(price)
	}

	return perNight.Mul(decimal.NewFromInt(int64(durationDays))), nil
}
