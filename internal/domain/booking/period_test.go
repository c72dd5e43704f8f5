//go:build unit

package booking_test

import (
	"math/rand"
	"testing"
	"time"

	"lardocepet-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) booking.Date {
	return booking.NewDate(2030, time.June, day)
}

func mustRange(t *testing.T, startDay, endDay int) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(date(startDay), date(endDay))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := booking.NewDateRange(date(10), date(15))
		require.NoError(t, err)
		assert.Equal(t, date(10), r.Start())
		assert.Equal(t, date(15), r.End())
		assert.Equal(t, 5, r.Days())
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := booking.NewDateRange(date(10), date(10))
		assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := booking.NewDateRange(date(15), date(10))
		assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.DateRange
		overlaps bool
	}{
		{name: "identical ranges", a: mustRange(t, 10, 15), b: mustRange(t, 10, 15), overlaps: true},
		{name: "b inside a", a: mustRange(t, 10, 20), b: mustRange(t, 12, 14), overlaps: true},
		{name: "a inside b", a: mustRange(t, 12, 14), b: mustRange(t, 10, 20), overlaps: true},
		{name: "partial overlap at tail", a: mustRange(t, 10, 15), b: mustRange(t, 14, 18), overlaps: true},
		{name: "partial overlap at head", a: mustRange(t, 14, 18), b: mustRange(t, 10, 15), overlaps: true},
		{name: "single shared day", a: mustRange(t, 10, 15), b: mustRange(t, 14, 16), overlaps: true},
		{name: "b starts on a's checkout day", a: mustRange(t, 10, 15), b: mustRange(t, 15, 20), overlaps: false},
		{name: "a starts on b's checkout day", a: mustRange(t, 15, 20), b: mustRange(t, 10, 15), overlaps: false},
		{name: "disjoint with gap", a: mustRange(t, 10, 12), b: mustRange(t, 20, 25), overlaps: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

// Randomized cross-check of Overlaps against a brute-force day-set
// intersection. Seeded so failures reproduce.
func TestDateRangeOverlapsMatchesDayIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	occupies := func(r booking.DateRange, d booking.Date) bool {
		return !d.Before(r.Start()) && d.Before(r.End())
	}

	for i := 0; i < 500; i++ {
		aStart := 1 + rng.Intn(20)
		aEnd := aStart + 1 + rng.Intn(8)
		bStart := 1 + rng.Intn(20)
		bEnd := bStart + 1 + rng.Intn(8)

		a := mustRange(t, aStart, aEnd)
		b := mustRange(t, bStart, bEnd)

		shared := false
		for d := date(1); d.Before(date(30)); d = d.AddDays(1) {
			if occupies(a, d) && occupies(b, d) {
				shared = true
				break
			}
		}

		require.Equal(t, shared, a.Overlaps(b),
			"a=%s b=%s", a.String(), b.String())
	}
}

func TestFirstOverlap(t *testing.T) {
	candidate := mustRange(t, 10, 15)
	existing := []booking.DateRange{
		mustRange(t, 1, 5),
		mustRange(t, 5, 10),
		mustRange(t, 14, 20),
		mustRange(t, 12, 13),
	}

	assert.Equal(t, 2, candidate.FirstOverlap(existing))
	assert.Equal(t, -1, candidate.FirstOverlap(existing[:2]))
	assert.Equal(t, -1, candidate.FirstOverlap(nil))
}

func TestDateRangeString(t *testing.T) {
	assert.Equal(t, "[2030-06-10, 2030-06-15)", mustRange(t, 10, 15).String())
}
