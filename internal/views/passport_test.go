package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourstory-app/ourstory/internal/journal"
)

func trip(id, location string, date journal.Date, end *journal.Date) journal.Record {
	return journal.Record{
		ID:       id,
		Title:    id,
		Date:     date,
		EndDate:  end,
		Location: location,
		Category: journal.CategoryTrip,
	}
}

func TestCountryOf(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"Niza, Francia", "Francia"},
		{"Paris, Francia", "Francia"},
		{"Narnia", CountryOther},
		{"Roma , Italia ", "Italia"},
		{"Trailing comma,", CountryOther},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CountryOf(tc.location), tc.location)
	}
}

func TestBuildPassport_GroupsAndSorts(t *testing.T) {
	records := []journal.Record{
		trip("paris", "Paris, Francia", journal.NewDate(2023, 4, 1), nil),
		trip("niza", "Niza, Francia", journal.NewDate(2024, 7, 15), nil),
		trip("narnia", "Narnia", journal.NewDate(2024, 1, 1), nil),
		// Non-trip records are ignored entirely.
		{ID: "food", Location: "Madrid, España", Date: journal.NewDate(2024, 5, 1), Category: journal.CategoryFood},
	}

	p := BuildPassport(records)

	require.Len(t, p.ByCountry["Francia"], 2)
	assert.Equal(t, "paris", p.ByCountry["Francia"][0].ID)
	assert.Equal(t, "niza", p.ByCountry["Francia"][1].ID)

	require.Len(t, p.ByCountry[CountryOther], 1)
	assert.Equal(t, "narnia", p.ByCountry[CountryOther][0].ID)

	assert.Equal(t, []string{"Francia", CountryOther}, p.Countries)
}

func TestBuildPassport_TotalNights(t *testing.T) {
	end := journal.NewDate(2024, 7, 22)
	inverted := journal.NewDate(2024, 7, 10)
	records := []journal.Record{
		trip("week", "Niza, Francia", journal.NewDate(2024, 7, 15), &end),
		trip("open", "Lisboa, Portugal", journal.NewDate(2024, 3, 1), nil),
		trip("bad-range", "Oslo, Noruega", journal.NewDate(2024, 7, 15), &inverted),
	}

	p := BuildPassport(records)

	// Seven nights from the week trip, zero from the others.
	assert.Equal(t, 7, p.TotalNights)
}

func TestCities(t *testing.T) {
	trips := []journal.Record{
		trip("a", "Niza, Francia", journal.NewDate(2024, 7, 15), nil),
		trip("b", "Niza, Francia", journal.NewDate(2024, 8, 1), nil),
		trip("c", "Paris, Francia", journal.NewDate(2023, 4, 1), nil),
	}
	assert.Equal(t, []string{"Niza", "Paris"}, Cities(trips))
}
