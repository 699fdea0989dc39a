package journal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15/07/2024")
	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2022, 9, 25)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022-09-25"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, d.Equal(got))
}

func TestDate_UnmarshalMalformedBecomesZero(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"garbage string", `"not-a-date"`},
		{"empty string", `""`},
		{"wrong type", `42`},
		{"null", `null`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.True(t, d.IsZero())
		})
	}
}

func TestDate_AddDaysCrossesMonthBoundary(t *testing.T) {
	d := NewDate(2024, 2, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
}

func TestDateOf_TruncatesTimeOfDay(t *testing.T) {
	ts := time.Date(2024, 7, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, NewDate(2024, 7, 15), DateOf(ts))
}
