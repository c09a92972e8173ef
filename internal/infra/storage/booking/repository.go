package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/pgerr"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var bookingColumns = []string{
	"b.id",
	"b.start_date",
	"b.end_date",
	"b.name",
	"b.surname",
	"b.room_ids",
	"b.number_of_people",
	"b.cost",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий бронирований и связей комнат с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование (без связей с комнатами, см. CreateRoomBookings)
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"start_date",
			"end_date",
			"name",
			"surname",
			"room_ids",
			"number_of_people",
			"cost",
		).
		Values(
			booking.StartDate,
			booking.EndDate,
			booking.Name,
			booking.Surname,
			booking.RoomIDs,
			booking.NumberOfPeople,
			booking.Cost,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до конца изменения бронирования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией
//
// Примеры использования:
//
// 1. Все бронирования:
//    filter := domain.BookingsFilter{}
//
// 2. Бронирования гостя:
//    filter := domain.BookingsFilter{Surname: ptr.Ptr("Kowalski")}
//
// 3. Бронирования, в которые входит комната 101:
//    filter := domain.BookingsFilter{RoomNumber: ptr.Ptr(101)}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		OrderBy("b.start_date ASC", "b.id ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.start_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.end_date": *filter.EndDate})
	}
	if filter.Name != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.name": *filter.Name})
	}
	if filter.Surname != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.surname": *filter.Surname})
	}
	if filter.NumberOfPeople != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.number_of_people": *filter.NumberOfPeople})
	}
	if filter.Cost != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.cost": *filter.Cost})
	}
	if filter.RoomNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr(
			"b.id IN (SELECT rb.booking_id FROM room_bookings rb JOIN rooms r ON r.id = rb.room_id WHERE r.number = ?)",
			*filter.RoomNumber,
		))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindOverlapping возвращает бронирования комнаты, пересекающиеся с полуинтервалом [start, end)
// Условие пересечения: b.end_date > start AND b.start_date < end (касание границ не считается)
// excludeID исключает бронирование, которое сейчас изменяется
// Внутри транзакции найденные строки блокируются (FOR UPDATE)
func (r *Repository) FindOverlapping(ctx context.Context, roomID int64, start, end types.Date, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("room_bookings rb ON rb.booking_id = b.id").
		Where(squirrel.Eq{"rb.room_id": roomID}).
		Where(squirrel.Gt{"b.end_date": start}).
		Where(squirrel.Lt{"b.start_date": end}).
		OrderBy("b.start_date ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update обновляет поля бронирования (связи с комнатами меняются через ReplaceRoomBookings)
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("name", booking.Name).
		Set("surname", booking.Surname).
		Set("room_ids", booking.RoomIDs).
		Set("number_of_people", booking.NumberOfPeople).
		Set("cost", booking.Cost).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CreateRoomBookings создает по одной связи RoomBooking на каждую комнату
func (r *Repository) CreateRoomBookings(ctx context.Context, bookingID int64, roomIDs []int64) error {
	if len(roomIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("room_bookings").Columns("booking_id", "room_id")
	for _, roomID := range roomIDs {
		insertBuilder = insertBuilder.Values(bookingID, roomID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateRoomBookings - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("%w: CreateRoomBookings - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteRoomBookings удаляет все связи бронирования с комнатами
func (r *Repository) DeleteRoomBookings(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteRoomBookings - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteRoomBookings - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}

// ReplaceRoomBookings полностью заменяет связи бронирования: удаляет все и создает заново
// После вызова связи в точности равны roomIDs
func (r *Repository) ReplaceRoomBookings(ctx context.Context, bookingID int64, roomIDs []int64) error {
	if err := r.DeleteRoomBookings(ctx, bookingID); err != nil {
		return err
	}
	return r.CreateRoomBookings(ctx, bookingID, roomIDs)
}

// GetRoomNumbers возвращает номера комнат для каждого из бронирований
func (r *Repository) GetRoomNumbers(ctx context.Context, bookingIDs []int64) (map[int64][]int, error) {
	result := make(map[int64][]int, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("rb.booking_id", "r.number").
		From("room_bookings rb").
		Join("rooms r ON r.id = rb.room_id").
		Where(squirrel.Eq{"rb.booking_id": bookingIDs}).
		OrderBy("rb.booking_id ASC", "rb.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomNumbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomNumbers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var number int
		if err := rows.Scan(&bookingID, &number); err != nil {
			return nil, fmt.Errorf("%w: GetRoomNumbers - scan row: %v", ErrScanRow, err)
		}
		result[bookingID] = append(result[bookingID], number)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomNumbers - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Name,
		&booking.Surname,
		&booking.RoomIDs,
		&booking.NumberOfPeople,
		&booking.Cost,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
