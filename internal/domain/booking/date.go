package booking

import (
	"strings"
	"time"

	"lardocepet-api/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid date")

// Date is a calendar day, the resolution bookings are made at. The store and
// the API exchange it as "2006-01-02"; internally it is midnight UTC so that
// day arithmetic never crosses DST boundaries.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Mark(errs.Wrap(err, "parse date"), ErrInvalidDate)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool        { return d.t.IsZero() }
func (d Date) Before(o Date) bool  { return d.t.Before(o.t) }
func (d Date) After(o Date) bool   { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool   { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date  { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) String() string      { return d.t.Format(time.DateOnly) }

// FormatBR renders the day the way user-facing messages show it.
func (d Date) FormatBR() string { return d.t.Format("02/01/2006") }

// DaysUntil returns the number of whole days from d to o (negative if o is
// earlier).
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	// The store may return full timestamps for date columns.
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
