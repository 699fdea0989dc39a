package views

import (
	"time"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// TimeTogether is the elapsed time since the anniversary in whole calendar
// units, computed with borrow arithmetic rather than day-count division.
type TimeTogether struct {
	Years  int
	Months int
	Days   int
}

// TogetherSince computes the calendar distance from the anniversary to now.
// When the day-of-month underflows it borrows the length of the month
// preceding now; when the month underflows it borrows a year.
func TogetherSince(anniversary journal.Date, now time.Time) TimeTogether {
	if anniversary.IsZero() {
		return TimeTogether{}
	}

	years := now.Year() - anniversary.Year()
	months := int(now.Month()) - int(anniversary.Month())
	days := now.Day() - anniversary.Day()

	if days < 0 {
		months--
		// Day zero of the current month is the last day of the previous one.
		prev := time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC)
		days += prev.Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return TimeTogether{Years: years, Months: months, Days: days}
}

// DaysUntilMonthday returns the number of days until the next occurrence of
// the given day-of-month (the "monthiversary" counter). If today is already
// on or past that day, the occurrence in the next month is used. Partial
// days round up.
func DaysUntilMonthday(now time.Time, day int) int {
	target := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	if now.Day() >= day {
		target = target.AddDate(0, 1, 0)
	}

	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
