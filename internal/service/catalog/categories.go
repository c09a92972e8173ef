package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/category"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

// ListCategories возвращает все категории
func (s *Service) ListCategories(ctx context.Context) ([]*models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// GetCategory возвращает категорию по ID
func (s *Service) GetCategory(ctx context.Context, id string) (*models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapCategoryError("GetCategory", id, err)
	}

	return models.FromDomainCategory(category), nil
}

// CreateCategory создает категорию
func (s *Service) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	s.logger.Info("CreateCategory: id=%s, name=%s, price=%s", req.ID, req.Name, req.Price)

	if err := validateCategory(req); err != nil {
		s.logger.Warn("CreateCategory: validation failed: %v", err)
		return nil, err
	}

	created, err := s.categoryRepo.Create(ctx, &domain.RoomCategory{
		ID:    req.ID,
		Price: req.Price,
		Name:  strings.TrimSpace(req.Name),
	})
	if err != nil {
		return nil, s.mapCategoryError("CreateCategory", req.ID, err)
	}

	s.logger.Info("CreateCategory: successfully created category id=%s", created.ID)
	return models.FromDomainCategory(created), nil
}

// UpdateCategory изменяет цену и название категории
// Категорию, на которую ссылаются комнаты, можно только переоценить, но не переименовать
func (s *Service) UpdateCategory(ctx context.Context, id string, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	s.logger.Info("UpdateCategory: id=%s, name=%s, price=%s", id, req.Name, req.Price)

	req.ID = id
	if err := validateCategory(req); err != nil {
		s.logger.Warn("UpdateCategory: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapCategoryError("UpdateCategory", id, err)
	}

	name := strings.TrimSpace(req.Name)
	if name != existing.Name {
		inUse, err := s.categoryRepo.CountRooms(ctx, id)
		if err != nil {
			s.logger.Error("UpdateCategory: failed to count rooms of category id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateCategory - count rooms: %v", ErrInternal, err)
		}
		if inUse > 0 {
			s.logger.Warn("UpdateCategory: category id=%s is used by %d rooms, rename rejected", id, inUse)
			return nil, ErrCategoryInUse
		}
	}

	existing.Name = name
	existing.Price = req.Price

	updated, err := s.categoryRepo.Update(ctx, existing)
	if err != nil {
		return nil, s.mapCategoryError("UpdateCategory", id, err)
	}

	s.logger.Info("UpdateCategory: successfully updated category id=%s", id)
	return models.FromDomainCategory(updated), nil
}

// DeleteCategory удаляет категорию, если на нее не ссылается ни одна комната
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	s.logger.Info("DeleteCategory: id=%s", id)

	inUse, err := s.categoryRepo.CountRooms(ctx, id)
	if err != nil {
		s.logger.Error("DeleteCategory: failed to count rooms of category id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteCategory - count rooms: %v", ErrInternal, err)
	}
	if inUse > 0 {
		s.logger.Warn("DeleteCategory: category id=%s is used by %d rooms", id, inUse)
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return s.mapCategoryError("DeleteCategory", id, err)
	}

	s.logger.Info("DeleteCategory: successfully deleted category id=%s", id)
	return nil
}

func (s *Service) mapCategoryError(op, id string, err error) error {
	switch {
	case errors.Is(err, categoryRepo.ErrCategoryNotFound):
		s.logger.Warn("%s: category id=%s not found", op, id)
		return fmt.Errorf("%w: id=%s", ErrCategoryNotFound, id)
	case errors.Is(err, categoryRepo.ErrCategoryAlreadyExists):
		s.logger.Warn("%s: category id=%s already exists", op, id)
		return ErrCategoryAlreadyExists
	case errors.Is(err, categoryRepo.ErrCategoryInUse):
		s.logger.Warn("%s: category id=%s is used by rooms", op, id)
		return ErrCategoryInUse
	default:
		s.logger.Error("%s: repository error for category id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// validateCategory проверяет поля категории
func validateCategory(req *models.CategoryRequest) error {
	if utf8.RuneCountInString(req.ID) != domain.CategoryIDLength {
		return fmt.Errorf("%w: category id must be exactly %d character", ErrInvalidInput, domain.CategoryIDLength)
	}

	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCategoryNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCategoryNameLength)
	}

	return nil
}
