package booking

// Quote carries the derived pricing fields persisted on a booking.
type Quote struct {
	ValorDiaria float64
	QtdPets     int
	QtdDias     int
	ValorTotal  float64
}

type PriceCalculator interface {
	Quote(dailyRate float64, petCount int, period DateRange) Quote
}

// DefaultPriceCalculator charges per pet per night.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (c *DefaultPriceCalculator) Quote(dailyRate float64, petCount int, period DateRange) Quote {
	days := period.Days()
	return Quote{
		ValorDiaria: dailyRate,
		QtdPets:     petCount,
		QtdDias:     days,
		ValorTotal:  dailyRate * float64(days) * float64(petCount),
	}
}
