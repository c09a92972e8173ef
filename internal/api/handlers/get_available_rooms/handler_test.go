package get_available_rooms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
	getAvailableRooms "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubUseCase struct {
	resp *getAvailableRooms.Response
	err  error
	got  *getAvailableRooms.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableRooms.Request) (*getAvailableRooms.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc GetAvailableRoomsUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableRooms.Response{
		StartDate: types.MustParseDate("2030-01-10"),
		EndDate:   types.MustParseDate("2030-01-12"),
		Duration:  2,
		Rooms: []getAvailableRooms.RoomOffer{
			{ID: 1, Number: 101, CategoryID: "A", Capacity: 2, Cost: decimal.NewFromInt(800)},
		},
	}}

	rec := serve(uc, "/api/v1/rooms/available?start_date=2030-01-10&end_date=2030-01-12&category_id=A&min_capacity=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2030-01-10", uc.got.StartDate)
	require.NotNil(t, uc.got.CategoryID)
	assert.Equal(t, "A", *uc.got.CategoryID)
	require.NotNil(t, uc.got.MinCapacity)
	assert.Equal(t, 2, *uc.got.MinCapacity)

	var body getAvailableRooms.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 1)
	assert.True(t, decimal.NewFromInt(800).Equal(body.Rooms[0].Cost))
}

func TestHandler_InvalidMinCapacity(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, "/api/v1/rooms/available?start_date=2030-01-10&end_date=2030-01-12&min_capacity=two")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		serve(&stubUseCase{err: reservation.ErrInvalidDateRange}, "/api/v1/rooms/available").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&stubUseCase{err: getAvailableRooms.ErrInvalidInput}, "/api/v1/rooms/available").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&stubUseCase{err: errors.New("db down")}, "/api/v1/rooms/available").Code)
}
