package views

import (
	"sort"
	"strings"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// CountryOther is the bucket for trips whose location has no country part
// (no comma in the free-text location).
const CountryOther = "Other"

// Passport groups Trip records by destination country for the passport view.
type Passport struct {
	// ByCountry maps country name to its trips, date-ascending. Trips
	// without a usable date sort first.
	ByCountry map[string][]journal.Record
	// Countries is the sorted list of map keys.
	Countries []string
	// TotalNights is the summed night count over trips that have both dates.
	TotalNights int
}

// CountryOf extracts the country from a "City, Country" location: the
// trimmed substring after the last comma, or CountryOther when there is
// no comma.
func CountryOf(location string) string {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return CountryOther
	}
	country := strings.TrimSpace(location[idx+1:])
	if country == "" {
		return CountryOther
	}
	return country
}

// BuildPassport computes the country grouping and total nights over the
// Trip-category records.
func BuildPassport(records []journal.Record) Passport {
	p := Passport{ByCountry: map[string][]journal.Record{}}

	for _, r := range records {
		if r.Category != journal.CategoryTrip {
			continue
		}
		country := CountryOf(r.Location)
		p.ByCountry[country] = append(p.ByCountry[country], r)
		p.TotalNights += nights(r)
	}

	for country, trips := range p.ByCountry {
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].Date.Before(trips[j].Date)
		})
		p.Countries = append(p.Countries, country)
	}
	sort.Strings(p.Countries)

	return p
}

// nights is the whole-night count of a trip, zero when either date is
// missing or the range is inverted.
func nights(r journal.Record) int {
	if r.Date.IsZero() || r.EndDate == nil || r.EndDate.IsZero() {
		return 0
	}
	n := int(r.EndDate.Time().Sub(r.Date.Time()).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Cities lists the unique city parts (text before the first comma) of the
// given trips, in first-seen order.
func Cities(trips []journal.Record) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range trips {
		city := strings.TrimSpace(strings.SplitN(r.Location, ",", 2)[0])
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		out = append(out, city)
	}
	return out
}
