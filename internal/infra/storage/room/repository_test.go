package room

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func newTestRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func TestRepository_Create_MapsConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    pq.ErrorCode
		wantErr error
	}{
		{name: "duplicate number", code: "23505", wantErr: ErrRoomNumberTaken},
		{name: "unknown category", code: "23503", wantErr: ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newTestRepository(t)

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (number,category_id,capacity) VALUES ($1,$2,$3)")).
				WithArgs(101, "A", 2).
				WillReturnError(&pq.Error{Code: tt.code})

			_, err := repo.Create(context.Background(), &domain.Room{Number: 101, CategoryID: "A", Capacity: 2})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID_SharesLockInTransaction(t *testing.T) {
	repo, db, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = $1 FOR SHARE")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 101, "A", 2, now, now))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	room, err := repo.GetByID(dbmetrics.WithTx(ctx, tx), 1)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 101, room.Number)
	assert.Equal(t, 2, room.Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery("FROM rooms WHERE id").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_FiltersByCategoryAndCapacity(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, number, category_id, capacity, created_at, updated_at FROM rooms WHERE category_id = $1 AND capacity >= $2 ORDER BY number ASC",
	)).
		WithArgs("A", 2).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 101, "A", 2, now, now).
			AddRow(2, 102, "A", 3, now, now))

	rooms, err := repo.List(context.Background(), domain.RoomsFilter{
		CategoryID:  ptr.Ptr("A"),
		MinCapacity: ptr.Ptr(2),
	})

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, 102, rooms[1].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_InUse(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(1).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrRoomInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
