package cli

import (
	"context"
	"time"

	"github.com/ourstory-app/ourstory/internal/views"
)

// Dashboard prints the landing view: who we are, how long together, the
// next planned date with its countdown, the monthiversary counter, and
// the headline stats.
func (a *App) Dashboard(ctx context.Context) error {
	now := time.Now()
	st := a.svc.State()
	cfg := st.Config()
	records := st.Records()

	a.printf("== %s ==\n", cfg.Name)

	if !cfg.Anniversary.IsZero() {
		tt := views.TogetherSince(cfg.Anniversary, now)
		a.printf("Together %d years, %d months, %d days (since %s)\n",
			tt.Years, tt.Months, tt.Days, cfg.Anniversary)
		a.printf("Next monthiversary in %d days\n",
			views.DaysUntilMonthday(now, cfg.Anniversary.Day()))
	}

	p := views.Partitioned(records, now)
	if p.Next != nil {
		cd := views.CountdownTo(p.Next.Date.Time(), now)
		a.printf("Next date: %s (%s) in %s\n", p.Next.Title, p.Next.Date, cd)
	} else {
		a.println("No upcoming dates planned.")
	}

	s := views.BuildStats(records, now)
	a.printf("Memories: %d past, %d upcoming | %.0f km travelled | %d movies\n",
		s.PastDates, s.Upcoming, s.TotalTripKM, s.CinemaCount)

	if hs := st.HighScore().Record; hs > 0 {
		a.printf("Tennis high score: %d\n", hs)
	}

	return nil
}
