package domain

import "errors"

// Общие виды ошибок, на которые ссылаются ошибки сервисов через errors.Is
var (
	// ErrNotFound запрошенная сущность не существует
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput входные данные не прошли проверку
	ErrInvalidInput = errors.New("invalid input")
)
