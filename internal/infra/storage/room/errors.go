package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomNumberTaken возвращается, когда номер комнаты уже занят другой комнатой
	ErrRoomNumberTaken = errors.New("room.repository: room number already exists")

	// ErrCategoryNotFound возвращается, когда указанная категория не существует
	ErrCategoryNotFound = errors.New("room.repository: category not found")

	// ErrRoomInUse возвращается при удалении комнаты, на которую ссылаются бронирования
	ErrRoomInUse = errors.New("room.repository: room is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
