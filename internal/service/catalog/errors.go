package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = fmt.Errorf("catalog: room %w", domain.ErrNotFound)

	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = fmt.Errorf("catalog: category %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("catalog: %w", domain.ErrInvalidInput)

	// ErrCategoryAlreadyExists возвращается при создании категории с занятым ID
	ErrCategoryAlreadyExists = errors.New("catalog: category already exists")

	// ErrCategoryInUse возвращается при удалении или переименовании категории, на которую ссылаются комнаты
	ErrCategoryInUse = errors.New("catalog: category is used by rooms")

	// ErrRoomNumberTaken возвращается, когда номер комнаты уже занят
	ErrRoomNumberTaken = errors.New("catalog: room number already exists")

	// ErrRoomInUse возвращается при удалении комнаты, на которую ссылаются бронирования
	ErrRoomInUse = errors.New("catalog: room is used by bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
