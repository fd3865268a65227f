package domain

import "time"

// Collection is a user-defined named group of quote references.
// Name uniqueness is not enforced; duplicate names are permitted.
//
// QuoteCount must always equal the length of the collection's membership
// list. Every mutating operation updates both together.
type Collection struct {
	// ID is the unique collection identifier.
	ID string

	// UserID is the owning account.
	UserID string

	// Name is the display name, non-empty after trimming.
	Name string

	// Description is optional free text.
	Description string

	// CreatedAt is when the collection was created.
	CreatedAt time.Time

	// UpdatedAt is when the collection was last modified.
	UpdatedAt time.Time

	// QuoteCount is the number of quotes in the collection.
	QuoteCount int
}
