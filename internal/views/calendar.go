package views

import (
	"github.com/ourstory-app/ourstory/internal/journal"
)

// OnDay reports whether a record belongs to the given calendar day: either
// its primary date equals the day, or the day falls inside the inclusive
// [date, endDate] range when an end date is present. Records without a
// usable primary date never match.
func OnDay(r journal.Record, day journal.Date) bool {
	if r.Date.IsZero() || day.IsZero() {
		return false
	}
	if r.EndDate != nil && !r.EndDate.IsZero() {
		return !day.Before(r.Date) && !day.After(*r.EndDate)
	}
	return r.Date.Equal(day)
}

// OnDayAll filters records down to the ones on the given day, preserving
// input order.
func OnDayAll(records []journal.Record, day journal.Date) []journal.Record {
	var out []journal.Record
	for _, r := range records {
		if OnDay(r, day) {
			out = append(out, r)
		}
	}
	return out
}

// MonthlyHistogram counts records per calendar month of the given year,
// one bucket per month, for the dashboard chart.
func MonthlyHistogram(records []journal.Record, year int) [12]int {
	var buckets [12]int
	for _, r := range records {
		if r.Date.IsZero() || r.Date.Year() != year {
			continue
		}
		buckets[int(r.Date.Month())-1]++
	}
	return buckets
}
