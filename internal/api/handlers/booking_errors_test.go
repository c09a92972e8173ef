package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
)

func TestRespondBookingRejection(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "date range", err: fmt.Errorf("%w: start before today", reservation.ErrInvalidDateRange), message: msgInvalidDateRange},
		{name: "unavailable", err: reservation.ErrRoomUnavailable, message: msgRoomUnavailable},
		{name: "capacity", err: reservation.ErrInsufficientCapacity, message: msgInsufficientCapacity},
		{name: "no rooms", err: reservation.ErrNoRooms, message: msgNoRooms},
		{name: "room not found", err: fmt.Errorf("%w: id=3", catalog.ErrRoomNotFound), message: msgRoomNotFound},
		{name: "name required", err: fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrNameRequired), message: msgNameRequired},
		{name: "surname too long", err: fmt.Errorf("%w: %w", domain.ErrInvalidInput, fmt.Errorf("%w: max 100 characters", domain.ErrSurnameTooLong)), message: msgSurnameTooLong},
		{name: "room ids too long", err: fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrRoomIDsTooLong), message: msgRoomIDsTooLong},
		{name: "other invalid input", err: fmt.Errorf("%w: booking id must be positive", domain.ErrInvalidInput), message: msgInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handled := RespondBookingRejection(rec, tt.err)

			require.True(t, handled)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestRespondBookingRejection_InternalErrorNotHandled(t *testing.T) {
	rec := httptest.NewRecorder()

	handled := RespondBookingRejection(rec, fmt.Errorf("%w: db down", reservation.ErrInternal))

	assert.False(t, handled)
	assert.False(t, RespondBookingRejection(rec, errors.New("boom")))
	assert.Equal(t, 0, rec.Body.Len())
}
