package extraction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEntries(t *testing.T) {
	t.Run("trims strings and coerces types", func(t *testing.T) {
		raw := []any{
			map[string]any{
				"part":         "  Part 22  ",
				"judge":        " Smith ",
				"calendar_day": nil,
				"out_dates":    []any{" 10/23 ", "", "10/24"},
				"confidence":   "0.8",
				"cases": []any{
					map[string]any{
						"defendant":   " Doe ",
						"case_count":  float64(3),
						"is_juvenile": "true",
					},
				},
			},
		}

		entries := normalizeEntries(raw)
		require.Len(t, entries, 1)

		e := entries[0]
		assert.Equal(t, "Part 22", e.Part)
		assert.Equal(t, "Smith", e.Judge)
		assert.Equal(t, "", e.CalendarDay)
		assert.Equal(t, []string{"10/23", "10/24"}, e.OutDates)
		assert.InDelta(t, 0.8, e.Confidence, 1e-9)

		require.Len(t, e.Cases, 1)
		assert.Equal(t, "Doe", e.Cases[0].Defendant)
		assert.Equal(t, 3, e.Cases[0].CaseCount)
		assert.True(t, e.Cases[0].IsJuvenile)
	})

	t.Run("lists are never nil", func(t *testing.T) {
		entries := normalizeEntries([]any{map[string]any{"part": "Part 1"}})
		require.Len(t, entries, 1)
		assert.NotNil(t, entries[0].OutDates)
		assert.NotNil(t, entries[0].Cases)
	})

	t.Run("non-object entries are skipped", func(t *testing.T) {
		entries := normalizeEntries([]any{"garbage", float64(42), map[string]any{"part": "Part 1"}})
		assert.Len(t, entries, 1)
	})

	t.Run("defaults for absent and mistyped fields", func(t *testing.T) {
		entries := normalizeEntries([]any{map[string]any{
			"part":       float64(7),
			"judge":      []any{"not", "a", "string"},
			"confidence": "not a number",
			"cases": []any{map[string]any{
				"case_count":  "12",
				"is_juvenile": float64(1),
			}},
		}})
		require.Len(t, entries, 1)
		assert.Equal(t, "7", entries[0].Part)
		assert.Equal(t, "", entries[0].Judge)
		assert.Zero(t, entries[0].Confidence)
		assert.Equal(t, 12, entries[0].Cases[0].CaseCount)
		assert.True(t, entries[0].Cases[0].IsJuvenile)
	})

	t.Run("round-trips through real AI-shaped JSON", func(t *testing.T) {
		body := `{"entries":[{"part":"TAP A / TAP G / GWP1\nOWN\n10/23","judge":"","out_dates":["10/24"],"confidence":0.6,"cases":[]}]}`
		var payload rawReport
		require.NoError(t, json.Unmarshal([]byte(body), &payload))

		entries := normalizeEntries(payload.Entries)
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"10/24"}, entries[0].OutDates)
		assert.Empty(t, entries[0].Cases)
		assert.NotNil(t, entries[0].Cases)
	})
}
