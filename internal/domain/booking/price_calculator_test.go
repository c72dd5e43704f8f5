//go:build unit

package booking_test

import (
	"testing"

	"lardocepet-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPriceCalculatorQuote(t *testing.T) {
	calc := booking.NewDefaultPriceCalculator()

	cases := []struct {
		name      string
		dailyRate float64
		petCount  int
		startDay  int
		endDay    int
		total     float64
	}{
		{name: "one pet one night", dailyRate: 80, petCount: 1, startDay: 10, endDay: 11, total: 80},
		{name: "one pet five nights", dailyRate: 80, petCount: 1, startDay: 10, endDay: 15, total: 400},
		{name: "two pets five nights", dailyRate: 80, petCount: 2, startDay: 10, endDay: 15, total: 800},
		{name: "fractional rate", dailyRate: 75.5, petCount: 2, startDay: 10, endDay: 12, total: 302},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := calc.Quote(tc.dailyRate, tc.petCount, mustRange(t, tc.startDay, tc.endDay))

			assert.Equal(t, tc.dailyRate, q.ValorDiaria)
			assert.Equal(t, tc.petCount, q.QtdPets)
			assert.Equal(t, tc.endDay-tc.startDay, q.QtdDias)
			assert.InDelta(t, tc.total, q.ValorTotal, 1e-9)
		})
	}
}
