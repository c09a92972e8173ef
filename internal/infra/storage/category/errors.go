package category

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("category.repository: category not found")

	// ErrCategoryAlreadyExists возвращается при попытке создать категорию с существующим ID
	ErrCategoryAlreadyExists = errors.New("category.repository: category already exists")

	// ErrCategoryInUse возвращается при удалении категории, на которую ссылаются комнаты
	ErrCategoryInUse = errors.New("category.repository: category is referenced by rooms")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("category.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("category.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("category.repository: failed to scan row")
)
