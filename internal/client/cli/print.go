package cli

import (
	"fmt"
	"strings"

	"github.com/ourstory-app/ourstory/internal/journal"
)

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printRecordLine(r journal.Record) {
	fav := " "
	if r.Favorite {
		fav = "*"
	}
	date := r.Date.String()
	if r.EndDate != nil {
		date += ".." + r.EndDate.String()
	}
	a.printf("%s %-36s  %-12s  %-10s  %s\n", fav, r.ID, date, r.Category, r.Title)
}

func (a *App) printRecordDetail(r journal.Record) {
	a.println(strings.Repeat("-", 60))
	a.printf("%s\n", r.Title)
	if r.Favorite {
		a.println("(favorite)")
	}
	a.printf("id:       %s\n", r.ID)
	a.printf("date:     %s", r.Date)
	if r.EndDate != nil {
		a.printf(" .. %s", r.EndDate)
	}
	a.println()
	a.printf("category: %s\n", r.Category)
	if r.Location != "" {
		a.printf("location: %s\n", r.Location)
	}
	if r.Description != "" {
		a.printf("notes:    %s\n", r.Description)
	}
	if r.Trip != nil {
		a.printf("trip:     %.0f km\n", r.Trip.DistanceKM)
	}
	if r.Cinema != nil {
		a.printf("cinema:   %s (her %d/5, him %d/5)\n", r.Cinema.Movie, r.Cinema.RatingHer, r.Cinema.RatingHim)
	}
	for _, u := range r.ImageURLs {
		a.printf("image:    %s\n", u)
	}
	a.println(strings.Repeat("-", 60))
}
