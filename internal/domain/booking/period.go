package booking

import (
	"fmt"

	"lardocepet-api/internal/pkg/errs"
)

var ErrEndNotAfterStart = errs.New("end date must be after start date")

// DateRange is a half-open stay period [start, end): the pet checks in on
// start and checks out on end, so a stay ending the day another begins is not
// a conflict. Every temporal-conflict decision in the system goes through
// Overlaps; the predicate exists exactly once.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, ErrEndNotAfterStart
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

// Days is the number of billable nights in the range.
func (r DateRange) Days() int {
	return r.start.DaysUntil(r.end)
}

// Overlaps reports whether two half-open ranges share at least one day:
// startA < endB && startB < endA. Touching endpoints do not overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.start.Before(o.end) && o.start.Before(r.end)
}

// FirstOverlap returns the index of the first range in rs overlapping r, in
// the order given, or -1. Callers rely on store order for deterministic
// conflict reporting.
func (r DateRange) FirstOverlap(rs []DateRange) int {
	for i, other := range rs {
		if r.Overlaps(other) {
			return i
		}
	}
	return -1
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.start, r.end)
}
