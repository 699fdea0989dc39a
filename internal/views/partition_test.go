package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourstory-app/ourstory/internal/journal"
)

func rec(id string, d journal.Date) journal.Record {
	return journal.Record{ID: id, Title: id, Date: d, Category: journal.CategoryFood}
}

func TestPartitioned(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	records := []journal.Record{
		rec("old", journal.NewDate(2024, 1, 1)),
		rec("today", journal.NewDate(2025, 6, 15)),
		rec("tomorrow", journal.NewDate(2025, 6, 16)),
		rec("later", journal.NewDate(2025, 12, 24)),
		rec("recent", journal.NewDate(2025, 6, 1)),
		rec("undated", journal.Date{}),
	}

	p := Partitioned(records, now)

	// Past is most-recent-first and includes today.
	require.Len(t, p.Past, 3)
	assert.Equal(t, "today", p.Past[0].ID)
	assert.Equal(t, "recent", p.Past[1].ID)
	assert.Equal(t, "old", p.Past[2].ID)

	// Future is soonest-first.
	require.Len(t, p.Future, 2)
	assert.Equal(t, "tomorrow", p.Future[0].ID)
	assert.Equal(t, "later", p.Future[1].ID)

	require.NotNil(t, p.Next)
	assert.Equal(t, "tomorrow", p.Next.ID)
}

func TestPartitioned_NoFutureMeansNoNext(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	p := Partitioned([]journal.Record{rec("old", journal.NewDate(2024, 1, 1))}, now)
	assert.Nil(t, p.Next)
	assert.Empty(t, p.Future)
}
