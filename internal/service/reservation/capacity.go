package reservation

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// CapacityChecker сравнивает суммарную вместимость комнат с числом гостей
type CapacityChecker struct {
	catalog RoomCatalog
}

func NewCapacityChecker(catalog RoomCatalog) *CapacityChecker {
	return &CapacityChecker{catalog: catalog}
}

// CheckRoomsCapacity возвращает true, если комнаты вмещают people гостей
func (c *CapacityChecker) CheckRoomsCapacity(rooms []*domain.Room, people int) bool {
	total := 0
	for _, room := range rooms {
		total += c.catalog.RoomCapacity(room)
	}
	return total >= people
}
