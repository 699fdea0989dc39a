package cli

import (
	"context"
	"time"

	"github.com/ourstory-app/ourstory/internal/journal"
	"github.com/ourstory-app/ourstory/internal/views"
)

// Calendar prints the days of a month that hold memories (multi-day
// ranges included), plus the year's per-month histogram.
func (a *App) Calendar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: calendar <YYYY-MM>")
		return nil
	}

	month, err := time.Parse("2006-01", args[0])
	if err != nil {
		return err
	}

	records := a.svc.State().Records()

	a.printf("== %s ==\n", month.Format("January 2006"))
	daysInMonth := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= daysInMonth; d++ {
		day := journal.NewDate(month.Year(), month.Month(), d)
		hits := views.OnDayAll(records, day)
		for _, r := range hits {
			a.printf("%2d  %s (%s)\n", d, r.Title, r.Category)
		}
	}

	hist := views.MonthlyHistogram(records, month.Year())
	a.printf("\n%d by month:", month.Year())
	for m, n := range hist {
		a.printf(" %s:%d", time.Month(m+1).String()[:3], n)
	}
	a.println()
	return nil
}
