package domain

// Business validation constants
const (
	CategoryIDLength      = 1
	MaxCategoryNameLength = 50
	MaxGuestNameLength    = 100
	MaxRoomIDsLength      = 100 // Длина денормализованной строки room_ids
)

// Операции бронирования (используются в логах и метриках)
const (
	OperationCreateBooking = "create"
	OperationUpdateBooking = "update"
)
