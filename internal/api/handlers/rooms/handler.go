package rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFilter      = "некорректный параметр фильтрации"
	msgInvalidRoom        = "некорректные данные комнаты: номер и вместимость должны быть положительными, категория обязательна"
	msgRoomNotFound       = "комната не найдена"
	msgCategoryNotFound   = "категория комнаты не найдена"
	msgRoomNumberTaken    = "комната с таким номером уже существует"
	msgRoomInUse          = "комната используется в бронированиях"
)

// Handler обработчики CRUD комнат
type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/rooms
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, err := ParseFilters(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.ListRooms(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, RoomListResponse{Rooms: result})
}

// Get GET /api/v1/rooms/{roomId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetRoom(r.Context(), roomID)
	if err != nil {
		h.respondServiceError(w, "GET /rooms/{id}", roomID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}

// Create POST /api/v1/rooms
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /rooms", 0, err)
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%d, number=%d", room.ID, room.Number)
	handlers.RespondJSON(w, http.StatusCreated, room)
}

// Update PUT /api/v1/rooms/{roomId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /rooms/{id}", roomID, err)
		return
	}

	h.logger.Info("PUT /rooms/{id} - Room updated successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}

// Delete DELETE /api/v1/rooms/{roomId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		h.respondServiceError(w, "DELETE /rooms/{id}", roomID, err)
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted: room_id=%d", roomID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, roomID int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found: room_id=%d", route, roomID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, catalog.ErrCategoryNotFound):
		h.logger.Warn("%s - Category not found: %v", route, err)
		handlers.RespondBadRequest(w, msgCategoryNotFound)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid room: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRoom)

	case errors.Is(err, catalog.ErrRoomNumberTaken):
		h.logger.Warn("%s - Room number taken", route)
		handlers.RespondConflict(w, msgRoomNumberTaken)

	case errors.Is(err, catalog.ErrRoomInUse):
		h.logger.Warn("%s - Room in use: room_id=%d", route, roomID)
		handlers.RespondConflict(w, msgRoomInUse)

	default:
		h.logger.Error("%s - Failed: room_id=%d, error=%v", route, roomID, err)
		handlers.RespondInternalError(w)
	}
}
