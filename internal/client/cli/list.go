package cli

import (
	"context"
	"strings"
	"time"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/views"
)

func parseFilterKind(word string) (views.FilterKind, bool) {
	switch strings.ToLower(word) {
	case "all":
		return views.FilterAll, true
	case "fav", "favorites":
		return views.FilterFavorites, true
	case "trip":
		return views.FilterTrip, true
	case "food":
		return views.FilterFood, true
	case "cinema":
		return views.FilterCinema, true
	case "milestone":
		return views.FilterMilestone, true
	}
	return views.FilterAll, false
}

// List prints the memories, optionally narrowed by a facet and a query:
// "list", "list trip", "list fav paris", "list paris".
func (a *App) List(ctx context.Context, args []string) error {
	kind := views.FilterAll
	if len(args) > 0 {
		if k, ok := parseFilterKind(args[0]); ok {
			kind = k
			args = args[1:]
		}
	}
	query := strings.Join(args, " ")

	records := views.Filter(a.svc.State().Records(), query, kind)
	if len(records) == 0 {
		a.println("Nothing found.")
		return nil
	}

	p := views.Partitioned(records, time.Now())
	if len(p.Future) > 0 {
		a.println("Upcoming:")
		for _, r := range p.Future {
			a.printRecordLine(r)
		}
	}
	if len(p.Past) > 0 {
		a.println("Memories:")
		for _, r := range p.Past {
			a.printRecordLine(r)
		}
	}
	return nil
}

// Show opens the detail view for one record.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: show <id>")
		return nil
	}

	if !a.svc.State().OpenDetail(args[0]) {
		return common.ErrorNotFound
	}
	r, _ := a.svc.State().Detail()
	a.printRecordDetail(r)
	return nil
}
