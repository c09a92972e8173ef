package room_categories

import "github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []*models.CategoryResponse `json:"categories"`
}
