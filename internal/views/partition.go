// Package views computes the derived read models of the journal: temporal
// partitions, countdowns, calendar membership, passport groupings, the
// dashboard stats, and search filtering.
//
// Everything here is pure: the current time is always an explicit argument,
// and records with a missing or malformed primary date are skipped by
// date-dependent computations instead of failing them.
package views

import (
	"sort"
	"time"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// Partition splits records into past and future relative to now's calendar
// date. Past records are ordered most-recent-first, future records
// soonest-first; Next is the soonest future record, if any.
type Partition struct {
	Past   []journal.Record
	Future []journal.Record
	Next   *journal.Record
}

// Partitioned computes the temporal partition for the given reference time.
// A record dated today counts as past, matching "date <= today".
func Partitioned(records []journal.Record, now time.Time) Partition {
	today := journal.DateOf(now)

	var p Partition
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if r.Date.After(today) {
			p.Future = append(p.Future, r)
		} else {
			p.Past = append(p.Past, r)
		}
	}

	sort.SliceStable(p.Past, func(i, j int) bool {
		return p.Past[j].Date.Before(p.Past[i].Date)
	})
	sort.SliceStable(p.Future, func(i, j int) bool {
		return p.Future[i].Date.Before(p.Future[j].Date)
	})

	if len(p.Future) > 0 {
		next := p.Future[0]
		p.Next = &next
	}
	return p
}
