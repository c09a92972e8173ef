package list_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type stubService struct {
	resp *models.BookingListResponse
	err  error
	got  *models.ListBookingsRequest
}

func (s *stubService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	return s.resp, s.err
}

func TestParseFilters_AllFields(t *testing.T) {
	query := url.Values{
		"start_date":       {"2030-01-10"},
		"end_date":         {"2030-01-20"},
		"name":             {" Ivan "},
		"surname":          {"Petrov"},
		"number_of_people": {"3"},
		"cost":             {"1500.00"},
		"room_number":      {"101"},
	}

	req, err := ParseFilters(query)

	require.NoError(t, err)
	require.NotNil(t, req.StartDate)
	assert.Equal(t, "2030-01-10", req.StartDate.String())
	require.NotNil(t, req.EndDate)
	assert.Equal(t, "2030-01-20", req.EndDate.String())
	assert.Equal(t, "Ivan", *req.Name)
	assert.Equal(t, "Petrov", *req.Surname)
	assert.Equal(t, 3, *req.NumberOfPeople)
	assert.True(t, decimal.NewFromInt(1500).Equal(*req.Cost))
	assert.Equal(t, 101, *req.RoomNumber)
}

func TestParseFilters_Empty(t *testing.T) {
	req, err := ParseFilters(url.Values{"name": {""}})

	require.NoError(t, err)
	assert.Equal(t, &models.ListBookingsRequest{}, req)
}

func TestParseFilters_Invalid(t *testing.T) {
	for _, query := range []url.Values{
		{"start_date": {"10.01.2030"}},
		{"end_date": {"2030-13-01"}},
		{"number_of_people": {"many"}},
		{"cost": {"free"}},
		{"room_number": {"1a"}},
	} {
		_, err := ParseFilters(query)
		assert.Error(t, err, query.Encode())
	}
}

func TestHandler_OK(t *testing.T) {
	svc := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}, {ID: 2}}}}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?room_number=101", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.RoomNumber)
	assert.Equal(t, 101, *svc.got.RoomNumber)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Bookings, 2)
}

func TestHandler_InvalidFilter(t *testing.T) {
	svc := &stubService{}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?cost=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandler_Internal(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
