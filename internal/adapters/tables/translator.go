package tables

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/quotevault/quotevault/internal/domain"
)

// External row shapes for the table API. These are internal to the
// adapter and never exposed to the rest of the application.

type quoteRow struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

type favoriteRow struct {
	UserID  string `json:"user_id"`
	QuoteID string `json:"quote_id"`
}

type collectionRow struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type collectionQuoteRow struct {
	CollectionID string `json:"collection_id"`
	QuoteID      string `json:"quote_id"`
	CreatedAt    string `json:"created_at"`
}

type userRow struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"display_name"`
	AvatarURL        string `json:"avatar_url"`
	NotificationTime string `json:"notification_time"`
	Theme            string `json:"theme"`
	FontSize         string `json:"font_size"`
	CreatedAt        string `json:"created_at"`
}

// Translator converts an external row into a domain value, validating
// along the way.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// translateSlice applies a translator to every row, failing on the first
// invalid one.
func translateSlice[E any, D any](rows []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(rows))

	for i := range rows {
		translated, err := translate(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("translating row %d: %w", i, err)
		}

		result = append(result, *translated)
	}

	return result, nil
}

// decodeRows reads and decodes a JSON response body, closing it after.
func decodeRows[T any](body io.ReadCloser) ([]T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var rows []T
	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return rows, nil
}

// decodeObject reads and decodes a single JSON object, closing the body after.
func decodeObject[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var obj T
	if err := json.NewDecoder(body).Decode(&obj); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &obj, nil
}

// translateQuote validates a quote row and converts it to a domain quote.
func translateQuote(row *quoteRow) (*domain.Quote, error) {
	if row.ID == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	if row.Text == "" {
		return nil, domain.NewValidationError("text", "is required")
	}

	category, ok := domain.ParseCategory(row.Category)
	if !ok {
		return nil, domain.NewValidationError("category", fmt.Sprintf("unknown category %q", row.Category))
	}

	return &domain.Quote{
		ID:        row.ID,
		Text:      row.Text,
		Author:    row.Author,
		Category:  category,
		CreatedAt: parseTimestamp(row.CreatedAt),
	}, nil
}

// translateCollection validates a collection row.
func translateCollection(row *collectionRow) (*domain.Collection, error) {
	if row.ID == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	if row.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	return &domain.Collection{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   parseTimestamp(row.CreatedAt),
		UpdatedAt:   parseTimestamp(row.UpdatedAt),
	}, nil
}

// translateUser converts a user row to a domain user.
func translateUser(row *userRow) (*domain.User, error) {
	if row.ID == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	return &domain.User{
		ID:               row.ID,
		Email:            row.Email,
		DisplayName:      row.Name,
		AvatarURL:        row.AvatarURL,
		CreatedAt:        parseTimestamp(row.CreatedAt),
		NotificationTime: row.NotificationTime,
		Theme:            row.Theme,
		FontSize:         row.FontSize,
	}, nil
}

// parseTimestamp parses API timestamps, tolerating missing fractional
// seconds and empty values.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
