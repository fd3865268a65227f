// Package catalog holds the built-in quote set and the daily rotation.
//
// The catalog is the demo-mode source of truth and the fallback for every
// remote fetch that fails: the app must always have quotes to show.
package catalog

import (
	"time"

	"github.com/quotevault/quotevault/internal/domain"
)

// All returns the full catalog in its fixed order. The returned slice is
// a copy; callers may reorder or filter it freely.
func All() []domain.Quote {
	quotes := make([]domain.Quote, len(seed))
	copy(quotes, seed)

	return quotes
}

// Len returns the catalog size. Guaranteed non-zero.
func Len() int {
	return len(seed)
}

// QuoteOfDay deterministically selects the quote for the calendar date of
// ref: the catalog entry at index dayOfYear(ref) mod len(catalog), with
// the quote-of-day flag set. Same result for any time on the same local
// date.
func QuoteOfDay(ref time.Time) domain.Quote {
	quote := seed[ref.YearDay()%len(seed)]
	quote.QuoteOfDay = true

	return quote
}
