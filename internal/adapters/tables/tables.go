// Package tables implements the quote backend against the hosted table
// store. Rows live in the quotes, favorites, collections, collection_quotes
// and users tables under /rest/v1; accounts are managed under /auth/v1.
package tables

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// serviceName identifies this backend in errors and logs.
const serviceName = "quote-tables"

// restPrefix is the path prefix for table rows.
const restPrefix = "/rest/v1"

// dailyQuoteRow is the join row returned when selecting the daily pick
// with its quote embedded.
type dailyQuoteRow struct {
	Date  string   `json:"date"`
	Quote quoteRow `json:"quote"`
}

// Config configures the tables backend.
type Config struct {
	// Client is the instrumented HTTP client, already pointed at the
	// table store base URL with auth headers injected.
	Client *clients.Client

	// Logger is an optional logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Backend implements ports.Backend against the table API.
type Backend struct {
	client *clients.Client
	logger *slog.Logger
}

// New creates a tables backend. Panics if Client is nil.
func New(cfg Config) *Backend {
	if cfg.Client == nil {
		panic("tables.Backend: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Backend{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "tables.Backend")),
	}
}

// Name implements ports.HealthChecker.
func (b *Backend) Name() string { return serviceName }

// Check implements ports.HealthChecker with a minimal row fetch.
func (b *Backend) Check(ctx context.Context) error {
	body, err := b.get(ctx, restPrefix+"/quotes?select=id&limit=1", "health check", "")
	if err != nil {
		return err
	}

	_ = body.Close()

	return nil
}

// ListQuotes returns every quote, newest first.
func (b *Backend) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	path := restPrefix + "/quotes?select=*&order=created_at.desc"

	body, err := b.get(ctx, path, "list quotes", "")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[quoteRow](body)
	if err != nil {
		return nil, err
	}

	return translateSlice(rows, translateQuote)
}

// QuoteOfDay returns the recorded pick for the given date.
func (b *Backend) QuoteOfDay(ctx context.Context, date string) (*domain.Quote, error) {
	path := restPrefix + "/quote_of_day?select=date,quote:quotes(*)&date=eq." + url.QueryEscape(date) + "&limit=1"

	body, err := b.get(ctx, path, "get quote of day", date)
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[dailyQuoteRow](body)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("daily quote", date)
	}

	return translateQuote(&rows[0].Quote)
}

// ListFavorites returns the user's favorite quote ids in add order.
func (b *Backend) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	path := restPrefix + "/favorites?select=user_id,quote_id&user_id=eq." +
		url.QueryEscape(userID) + "&order=created_at.asc"

	body, err := b.get(ctx, path, "list favorites", userID)
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[favoriteRow](body)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.QuoteID)
	}

	return ids, nil
}

// AddFavorite inserts a favorite row. Duplicate inserts are ignored
// server-side so the operation stays idempotent.
func (b *Backend) AddFavorite(ctx context.Context, userID, quoteID string) error {
	payload := favoriteRow{UserID: userID, QuoteID: quoteID}

	return b.insertIgnoringDuplicates(ctx, restPrefix+"/favorites", payload, "add favorite")
}

// RemoveFavorite deletes the favorite row if present.
func (b *Backend) RemoveFavorite(ctx context.Context, userID, quoteID string) error {
	path := restPrefix + "/favorites?user_id=eq." + url.QueryEscape(userID) +
		"&quote_id=eq." + url.QueryEscape(quoteID)

	return b.delete(ctx, path, "remove favorite")
}

// ListCollections returns the user's collections newest first, with the
// membership of each resolved in add order.
func (b *Backend) ListCollections(ctx context.Context, userID string) ([]ports.CollectionRecord, error) {
	path := restPrefix + "/collections?select=*&user_id=eq." +
		url.QueryEscape(userID) + "&order=created_at.desc"

	body, err := b.get(ctx, path, "list collections", userID)
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[collectionRow](body)
	if err != nil {
		return nil, err
	}

	collections, err := translateSlice(rows, translateCollection)
	if err != nil {
		return nil, err
	}

	membership, err := b.listMembership(ctx, collections)
	if err != nil {
		return nil, err
	}

	records := make([]ports.CollectionRecord, 0, len(collections))
	for _, c := range collections {
		records = append(records, ports.CollectionRecord{
			Collection: c,
			QuoteIDs:   membership[c.ID],
		})
	}

	return records, nil
}

// listMembership fetches collection_quotes rows for the given collections
// in one query and groups them by collection.
func (b *Backend) listMembership(ctx context.Context, collections []domain.Collection) (map[string][]string, error) {
	membership := make(map[string][]string, len(collections))
	if len(collections) == 0 {
		return membership, nil
	}

	ids := make([]string, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID)
	}

	path := restPrefix + "/collection_quotes?select=collection_id,quote_id,created_at&collection_id=in.(" +
		url.QueryEscape(strings.Join(ids, ",")) + ")&order=created_at.asc"

	body, err := b.get(ctx, path, "list collection quotes", "")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[collectionQuoteRow](body)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		membership[row.CollectionID] = append(membership[row.CollectionID], row.QuoteID)
	}

	return membership, nil
}

// InsertCollection inserts a collection row and returns the stored form.
func (b *Backend) InsertCollection(ctx context.Context, c domain.Collection) (*domain.Collection, error) {
	payload := map[string]string{
		"user_id":     c.UserID,
		"name":        c.Name,
		"description": c.Description,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}

	req, err := b.newRequest(ctx, http.MethodPost, restPrefix+"/collections", raw)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Prefer", "return=representation")

	body, err := b.do(ctx, req, "create collection", "")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[collectionRow](body)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewUnavailableError(serviceName, "create collection returned no row")
	}

	return translateCollection(&rows[0])
}

// DeleteCollection removes the collection and its membership rows.
func (b *Backend) DeleteCollection(ctx context.Context, id string) error {
	memberPath := restPrefix + "/collection_quotes?collection_id=eq." + url.QueryEscape(id)
	if err := b.delete(ctx, memberPath, "delete collection quotes"); err != nil {
		return err
	}

	return b.delete(ctx, restPrefix+"/collections?id=eq."+url.QueryEscape(id), "delete collection")
}

// AddCollectionQuote inserts a membership row, ignoring duplicates.
func (b *Backend) AddCollectionQuote(ctx context.Context, collectionID, quoteID string) error {
	payload := collectionQuoteRow{CollectionID: collectionID, QuoteID: quoteID}

	return b.insertIgnoringDuplicates(ctx, restPrefix+"/collection_quotes", payload, "add collection quote")
}

// RemoveCollectionQuote deletes the membership row if present.
func (b *Backend) RemoveCollectionQuote(ctx context.Context, collectionID, quoteID string) error {
	path := restPrefix + "/collection_quotes?collection_id=eq." + url.QueryEscape(collectionID) +
		"&quote_id=eq." + url.QueryEscape(quoteID)

	return b.delete(ctx, path, "remove collection quote")
}

// get issues a GET and maps failures to domain errors.
// On success the caller owns the returned body.
func (b *Backend) get(ctx context.Context, path, operation, entityID string) (io.ReadCloser, error) {
	resp, err := b.client.Get(ctx, path)
	if err != nil {
		return nil, mapHTTPError(nil, err, operation, entityID)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, mapHTTPError(resp, nil, operation, entityID)
	}

	return resp.Body, nil
}

// delete issues a DELETE and maps failures to domain errors.
func (b *Backend) delete(ctx context.Context, path, operation string) error {
	resp, err := b.client.Delete(ctx, path)
	if err != nil {
		return mapHTTPError(nil, err, operation, "")
	}
	defer func() { _ = resp.Body.Close() }()

	return mapHTTPError(resp, nil, operation, "")
}

// insertIgnoringDuplicates POSTs a row with duplicate resolution so
// repeated inserts succeed.
func (b *Backend) insertIgnoringDuplicates(ctx context.Context, path string, payload any, operation string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := b.newRequest(ctx, http.MethodPost, path, raw)
	if err != nil {
		return err
	}

	req.Header.Set("Prefer", "resolution=ignore-duplicates")

	body, err := b.do(ctx, req, operation, "")
	if err != nil {
		return err
	}

	_ = body.Close()

	return nil
}

// newRequest builds a request against the client's base URL.
func (b *Backend) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.client.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// do executes a prepared request and maps failures to domain errors.
func (b *Backend) do(ctx context.Context, req *http.Request, operation, entityID string) (io.ReadCloser, error) {
	resp, err := b.client.Do(ctx, req)
	if err != nil {
		return nil, mapHTTPError(nil, err, operation, entityID)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, mapHTTPError(resp, nil, operation, entityID)
	}

	return resp.Body, nil
}
