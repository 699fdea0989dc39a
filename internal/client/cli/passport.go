package cli

import (
	"context"
	"strings"

	"github.com/ourstory-app/ourstory/internal/views"
)

// Passport prints the trips grouped by country with city lists and the
// total night count.
func (a *App) Passport(ctx context.Context) error {
	p := views.BuildPassport(a.svc.State().Records())

	if len(p.Countries) == 0 {
		a.println("No trips yet.")
		return nil
	}

	for _, country := range p.Countries {
		trips := p.ByCountry[country]
		a.printf("%s (%d)\n", country, len(trips))
		if cities := views.Cities(trips); len(cities) > 0 {
			a.printf("  cities: %s\n", strings.Join(cities, ", "))
		}
		for _, r := range trips {
			a.printf("  %s  %s\n", r.Date, r.Title)
		}
	}
	a.printf("Total nights away: %d\n", p.TotalNights)
	return nil
}
