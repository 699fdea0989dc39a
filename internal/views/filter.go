package views

import (
	"strings"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// FilterKind selects the category/favorite facet of the memories list.
type FilterKind string

const (
	FilterAll       FilterKind = "All"
	FilterFavorites FilterKind = "Favorites"
	FilterTrip      FilterKind = "Trip"
	FilterFood      FilterKind = "Food"
	FilterCinema    FilterKind = "Cinema"
	FilterMilestone FilterKind = "Milestone"
)

// FilterKinds lists the selectable facets in display order.
func FilterKinds() []FilterKind {
	return []FilterKind{FilterAll, FilterFavorites, FilterTrip, FilterFood, FilterCinema, FilterMilestone}
}

// Filter returns the records whose title or location contains the query
// (case-insensitive) and which match the selected facet. An empty query
// matches everything.
func Filter(records []journal.Record, query string, kind FilterKind) []journal.Record {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []journal.Record
	for _, r := range records {
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Location), q) {
			continue
		}
		if !matchesKind(r, kind) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesKind(r journal.Record, kind FilterKind) bool {
	switch kind {
	case FilterAll, "":
		return true
	case FilterFavorites:
		return r.Favorite
	default:
		return string(r.Category) == string(kind)
	}
}
