// Package domain contains core business entities and rules.
package domain

import "time"

// Category classifies a quote into one of the eight fixed themes.
type Category string

// The full category set. The catalog guarantees every category has at
// least one quote.
const (
	CategoryMotivation Category = "motivation"
	CategoryLove       Category = "love"
	CategorySuccess    Category = "success"
	CategoryWisdom     Category = "wisdom"
	CategoryHumor      Category = "humor"
	CategoryLife       Category = "life"
	CategoryFriendship Category = "friendship"
	CategoryHappiness  Category = "happiness"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryMotivation,
		CategoryLove,
		CategorySuccess,
		CategoryWisdom,
		CategoryHumor,
		CategoryLife,
		CategoryFriendship,
		CategoryHappiness,
	}
}

// ParseCategory returns the Category matching s, or false if s is not
// one of the fixed values.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}

	return "", false
}

// Quote represents a quotation with its author.
// Quotes are immutable once created: there is no edit operation anywhere
// in the system, and the client never deletes them.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the quotation itself.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Category is the theme this quote belongs to.
	Category Category

	// CreatedAt is when the quote entered the system.
	CreatedAt time.Time

	// QuoteOfDay marks the quote currently selected as quote of the day.
	QuoteOfDay bool
}
