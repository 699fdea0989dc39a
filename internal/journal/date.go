package journal

import (
	"encoding/json"
	"time"

	"github.com/ourstory-app/ourstory/internal/common"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. The zero value is
// "no date": records carrying one stay visible but are skipped by every
// date-dependent computation.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, common.ErrorInvalidDate
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int        { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int         { return d.t.Day() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON is deliberately tolerant: a malformed or empty date becomes
// the zero Date instead of failing the whole document.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}
