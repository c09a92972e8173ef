package room_categories

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*models.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (*models.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
