package views

import (
	"time"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// Stats are the headline dashboard numbers.
type Stats struct {
	PastDates   int
	Upcoming    int
	TotalTripKM float64
	CinemaCount int
}

// BuildStats computes the dashboard counters for the given reference time.
func BuildStats(records []journal.Record, now time.Time) Stats {
	p := Partitioned(records, now)

	s := Stats{
		PastDates: len(p.Past),
		Upcoming:  len(p.Future),
	}
	for _, r := range records {
		if r.Trip != nil {
			s.TotalTripKM += r.Trip.DistanceKM
		}
		if r.Category == journal.CategoryCinema {
			s.CinemaCount++
		}
	}
	return s
}
