package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/domain"
)

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)

	first[0].Text = "mutated"

	assert.NotEqual(t, "mutated", All()[0].Text)
}

func TestAllCoversEveryCategory(t *testing.T) {
	seen := make(map[domain.Category]int)
	for _, q := range All() {
		seen[q.Category]++
	}

	for _, c := range domain.Categories() {
		assert.Positive(t, seen[c], "category %s has no quotes", c)
	}
}

func TestAllIDsUnique(t *testing.T) {
	ids := make(map[string]struct{})
	for _, q := range All() {
		_, dup := ids[q.ID]
		require.False(t, dup, "duplicate id %s", q.ID)
		ids[q.ID] = struct{}{}
	}
}

func TestQuoteOfDayStableWithinDate(t *testing.T) {
	morning := time.Date(2026, 3, 14, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local)

	assert.Equal(t, QuoteOfDay(morning), QuoteOfDay(night))
}

func TestQuoteOfDayRotates(t *testing.T) {
	day := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)
	next := day.AddDate(0, 0, 1)

	a := QuoteOfDay(day)
	b := QuoteOfDay(next)

	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.QuoteOfDay)
	assert.True(t, b.QuoteOfDay)
}

func TestQuoteOfDayUsesDayOfYearModulo(t *testing.T) {
	// Jan 2 has ordinal day 2, so the selection is the catalog entry at
	// index 2 mod len.
	ref := time.Date(2026, 1, 2, 9, 0, 0, 0, time.Local)
	want := All()[2%Len()]

	got := QuoteOfDay(ref)
	assert.Equal(t, want.ID, got.ID)
}
