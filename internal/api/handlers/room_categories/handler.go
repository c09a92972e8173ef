package room_categories

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCategory    = "некорректные данные категории: ID из одного символа, название до 50 символов, цена не отрицательная"
	msgCategoryNotFound   = "категория комнаты не найдена"
	msgCategoryExists     = "категория с таким ID уже существует"
	msgCategoryInUse      = "категория используется комнатами"
)

// Handler обработчики CRUD категорий комнат
type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/rooms/categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms/categories - Failed to list categories: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/categories - Categories retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, CategoryListResponse{Categories: result})
}

// Get GET /api/v1/rooms/categories/{categoryId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		h.respondServiceError(w, "GET /rooms/categories/{id}", categoryID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, category)
}

// Create POST /api/v1/rooms/categories
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /rooms/categories", req.ID, err)
		return
	}

	h.logger.Info("POST /rooms/categories - Category created successfully: category_id=%s", category.ID)
	handlers.RespondJSON(w, http.StatusCreated, category)
}

// Update PUT /api/v1/rooms/categories/{categoryId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]

	var req models.CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /rooms/categories/{id}", categoryID, err)
		return
	}

	h.logger.Info("PUT /rooms/categories/{id} - Category updated successfully: category_id=%s", categoryID)
	handlers.RespondJSON(w, http.StatusOK, category)
}

// Delete DELETE /api/v1/rooms/categories/{categoryId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		h.respondServiceError(w, "DELETE /rooms/categories/{id}", categoryID, err)
		return
	}

	h.logger.Info("DELETE /rooms/categories/{id} - Category deleted: category_id=%s", categoryID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route, categoryID string, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		h.logger.Warn("%s - Category not found: category_id=%s", route, categoryID)
		handlers.RespondNotFound(w, msgCategoryNotFound)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid category: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCategory)

	case errors.Is(err, catalog.ErrCategoryAlreadyExists):
		h.logger.Warn("%s - Category already exists: category_id=%s", route, categoryID)
		handlers.RespondConflict(w, msgCategoryExists)

	case errors.Is(err, catalog.ErrCategoryInUse):
		h.logger.Warn("%s - Category in use: category_id=%s", route, categoryID)
		handlers.RespondConflict(w, msgCategoryInUse)

	default:
		h.logger.Error("%s - Failed: category_id=%s, error=%v", route, categoryID, err)
		handlers.RespondInternalError(w)
	}
}
