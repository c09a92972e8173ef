package reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SystemClock возвращает текущую дату в заданной временной зоне
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock создает часы для временной зоны loc (nil - UTC)
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

// Today возвращает сегодняшнюю календарную дату
func (c *SystemClock) Today() types.Date {
	return types.DateOf(time.Now().In(c.loc))
}

// FixedClock всегда возвращает одну и ту же дату
type FixedClock struct {
	Date types.Date
}

func (c FixedClock) Today() types.Date {
	return c.Date
}
