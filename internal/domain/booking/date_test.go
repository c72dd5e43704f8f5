//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"
	"time"

	"lardocepet-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		d, err := booking.ParseDate("2030-06-10")
		require.NoError(t, err)
		assert.Equal(t, "2030-06-10", d.String())
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		d, err := booking.ParseDate("  2030-06-10 ")
		require.NoError(t, err)
		assert.Equal(t, "2030-06-10", d.String())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := booking.ParseDate("10/06/2030")
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2030, time.June, 10, 23, 45, 1, 0, time.FixedZone("BRT", -3*3600))
	assert.Equal(t, booking.NewDate(2030, time.June, 10), booking.DateOf(ts))
}

func TestDateArithmetic(t *testing.T) {
	d := booking.NewDate(2030, time.June, 10)

	assert.Equal(t, booking.NewDate(2030, time.June, 15), d.AddDays(5))
	assert.Equal(t, 5, d.DaysUntil(d.AddDays(5)))
	assert.Equal(t, -5, d.AddDays(5).DaysUntil(d))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.True(t, d.Equal(booking.NewDate(2030, time.June, 10)))

	// Crosses the month boundary.
	assert.Equal(t, booking.NewDate(2030, time.July, 2), booking.NewDate(2030, time.June, 30).AddDays(2))
}

func TestDateFormatBR(t *testing.T) {
	assert.Equal(t, "05/06/2030", booking.NewDate(2030, time.June, 5).FormatBR())
}

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(booking.NewDate(2030, time.June, 10))
		require.NoError(t, err)
		assert.Equal(t, `"2030-06-10"`, string(b))
	})

	t.Run("unmarshal plain date", func(t *testing.T) {
		var d booking.Date
		require.NoError(t, json.Unmarshal([]byte(`"2030-06-10"`), &d))
		assert.Equal(t, booking.NewDate(2030, time.June, 10), d)
	})

	t.Run("unmarshal timestamp from store", func(t *testing.T) {
		var d booking.Date
		require.NoError(t, json.Unmarshal([]byte(`"2030-06-10T00:00:00+00:00"`), &d))
		assert.Equal(t, booking.NewDate(2030, time.June, 10), d)
	})

	t.Run("unmarshal null leaves zero value", func(t *testing.T) {
		var d booking.Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var d booking.Date
		assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	})
}
