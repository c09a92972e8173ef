package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.October, 14), d)
	assert.Equal(t, "2026-10-14", d.String())

	for _, bad := range []string{"", "2026-13-01", "14.10.2026", "2026-10-14T10:00:00Z"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, bad)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	start := NewDate(2026, time.October, 30)

	assert.Equal(t, 10, start.DaysUntil(start.AddDays(10)))
	assert.Equal(t, 0, start.DaysUntil(start))
	assert.Equal(t, -1, start.DaysUntil(start.AddDays(-1)))
	// переход через конец месяца и года
	assert.Equal(t, 63, start.DaysUntil(NewDate(2027, time.January, 1)))
}

func TestDate_DaysUntil_FarApart(t *testing.T) {
	start := NewDate(2026, time.October, 15)
	end := NewDate(2400, time.June, 2)

	// больше предела time.Duration (106751 день)
	assert.Equal(t, 136466, start.DaysUntil(end))
	assert.Equal(t, -136466, end.DaysUntil(start))
	assert.True(t, start.AddDays(136466).Equal(end))
}

func TestDateOf_UsesLocationCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2026, time.October, 14, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, NewDate(2026, time.October, 15), DateOf(moment.In(loc)))
	assert.Equal(t, NewDate(2026, time.October, 14), DateOf(moment))
}

func TestDate_Comparisons(t *testing.T) {
	d := NewDate(2026, time.October, 14)

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))
	assert.True(t, d.Equal(MustParseDate("2026-10-14")))
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		Start Date `json:"start_date"`
	}{Start: NewDate(2026, time.November, 1)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"2026-11-01"}`, string(data))

	var decoded struct {
		Start Date `json:"start_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2026-12-31"}`), &decoded))
	assert.Equal(t, NewDate(2026, time.December, 31), decoded.Start)

	err = json.Unmarshal([]byte(`{"start_date":"31/12/2026"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-10-20", d.String())

	require.NoError(t, d.Scan([]byte("2026-10-21")))
	assert.Equal(t, "2026-10-21", d.String())

	require.NoError(t, d.Scan("2026-10-22T00:00:00Z"))
	assert.Equal(t, "2026-10-22", d.String())

	assert.ErrorIs(t, d.Scan(42), ErrUnsupportedDateSource)

	v, err := NewDate(2026, time.October, 23).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-23", v)
}
