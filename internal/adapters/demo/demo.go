// Package demo implements the quote backend against the built-in catalog.
// It needs no network access and ships with a small amount of seeded state
// so the app is usable before an account exists.
package demo

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quotevault/quotevault/internal/catalog"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// defaultLatency approximates a fast network round trip so the UI paths
// that show loading states stay exercised in demo mode.
const defaultLatency = 300 * time.Millisecond

// seeded demo state, matching what a fresh install shows.
var (
	seedFavorites = []string{"1", "16", "46", "97"}

	seedCollections = []seedCollection{
		{id: "col-1", name: "Morning Motivation", description: "Quotes to start the day right", quoteIDs: []string{"1", "4", "9"}},
		{id: "col-2", name: "Work Inspiration", description: "Stay focused and driven", quoteIDs: []string{"31", "44"}},
	}
)

type seedCollection struct {
	id          string
	name        string
	description string
	quoteIDs    []string
}

// Config configures the demo backend.
type Config struct {
	// Latency is the simulated per-call delay. Zero uses a default;
	// negative disables the delay entirely (used by tests).
	Latency time.Duration

	// Logger is an optional logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Backend is an in-memory implementation of ports.Backend.
// All state is per-process and lost on restart.
type Backend struct {
	latency time.Duration
	logger  *slog.Logger

	mu          sync.RWMutex
	favorites   map[string][]string          // userID -> quote ids, add order
	collections map[string][]collectionState // userID -> collections, newest first
}

type collectionState struct {
	collection domain.Collection
	quoteIDs   []string
}

// New creates a demo backend with seeded favorites and collections for
// every user that touches it.
func New(cfg Config) *Backend {
	latency := cfg.Latency
	if latency == 0 {
		latency = defaultLatency
	}
	if latency < 0 {
		latency = 0
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Backend{
		latency:     latency,
		logger:      logger.With(slog.String("component", "demo.Backend")),
		favorites:   make(map[string][]string),
		collections: make(map[string][]collectionState),
	}
}

// Name implements ports.HealthChecker.
func (b *Backend) Name() string { return "demo-backend" }

// Check implements ports.HealthChecker. The demo backend has no external
// dependencies, so it is healthy as long as the catalog loaded.
func (b *Backend) Check(_ context.Context) error {
	if catalog.Len() == 0 {
		return domain.NewUnavailableError("demo-backend", "catalog is empty")
	}

	return nil
}

// ListQuotes returns the full catalog.
func (b *Backend) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	if err := b.sleep(ctx); err != nil {
		return nil, err
	}

	return catalog.All(), nil
}

// QuoteOfDay returns the catalog's rotating pick for the given date.
func (b *Backend) QuoteOfDay(ctx context.Context, date string) (*domain.Quote, error) {
	if err := b.sleep(ctx); err != nil {
		return nil, err
	}

	ref, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	quote := catalog.QuoteOfDay(ref)

	return &quote, nil
}

// ListFavorites returns the user's favorites, seeding on first access.
func (b *Backend) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	if err := b.sleep(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ids := b.favoritesLocked(userID)
	out := make([]string, len(ids))
	copy(out, ids)

	return out, nil
}

// AddFavorite records a favorite. Adding twice is a no-op.
func (b *Backend) AddFavorite(ctx context.Context, userID, quoteID string) error {
	if err := b.sleep(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ids := b.favoritesLocked(userID)
	if slices.Contains(ids, quoteID) {
		return nil
	}

	b.favorites[userID] = append(ids, quoteID)

	return nil
}

// RemoveFavorite deletes a favorite. Removing an absent id is a no-op.
func (b *Backend) RemoveFavorite(ctx context.Context, userID, quoteID string) error {
	if err := b.sleep(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ids := b.favoritesLocked(userID)
	b.favorites[userID] = slices.DeleteFunc(ids, func(id string) bool {
		return id == quoteID
	})

	return nil
}

// ListCollections returns the user's collections with membership,
// seeding on first access.
func (b *Backend) ListCollections(ctx context.Context, userID string) ([]ports.CollectionRecord, error) {
	if err := b.sleep(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	states := b.collectionsLocked(userID)
	records := make([]ports.CollectionRecord, 0, len(states))

	for _, st := range states {
		quoteIDs := make([]string, len(st.quoteIDs))
		copy(quoteIDs, st.quoteIDs)

		records = append(records, ports.CollectionRecord{
			Collection: st.collection,
			QuoteIDs:   quoteIDs,
		})
	}

	return records, nil
}

// InsertCollection stores a new collection, assigning an id and timestamps.
func (b *Backend) InsertCollection(ctx context.Context, c domain.Collection) (*domain.Collection, error) {
	if err := b.sleep(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	states := b.collectionsLocked(c.UserID)
	// Newest first.
	b.collections[c.UserID] = append([]collectionState{{collection: c}}, states...)

	return &c, nil
}

// DeleteCollection removes a collection and its membership.
func (b *Backend) DeleteCollection(ctx context.Context, id string) error {
	if err := b.sleep(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for userID, states := range b.collections {
		b.collections[userID] = slices.DeleteFunc(states, func(st collectionState) bool {
			return st.collection.ID == id
		})
	}

	return nil
}

// AddCollectionQuote adds a quote to a collection's membership.
func (b *Backend) AddCollectionQuote(ctx context.Context, collectionID, quoteID string) error {
	if err := b.sleep(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.findCollectionLocked(collectionID)
	if st == nil {
		return domain.NewNotFoundError("collection", collectionID)
	}

	if slices.Contains(st.quoteIDs, quoteID) {
		return nil
	}

	st.quoteIDs = append(st.quoteIDs, quoteID)
	st.collection.UpdatedAt = time.Now()

	return nil
}

// RemoveCollectionQuote removes a quote from a collection's membership.
func (b *Backend) RemoveCollectionQuote(ctx context.Context, collectionID, quoteID string) error {
	if err := b.sleep(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.findCollectionLocked(collectionID)
	if st == nil {
		return domain.NewNotFoundError("collection", collectionID)
	}

	st.quoteIDs = slices.DeleteFunc(st.quoteIDs, func(id string) bool {
		return id == quoteID
	})
	st.collection.UpdatedAt = time.Now()

	return nil
}

// favoritesLocked returns the user's favorite ids, seeding on first access.
// Callers must hold mu.
func (b *Backend) favoritesLocked(userID string) []string {
	if ids, ok := b.favorites[userID]; ok {
		return ids
	}

	ids := make([]string, len(seedFavorites))
	copy(ids, seedFavorites)
	b.favorites[userID] = ids

	return ids
}

// collectionsLocked returns the user's collections, seeding on first access.
// Callers must hold mu.
func (b *Backend) collectionsLocked(userID string) []collectionState {
	if states, ok := b.collections[userID]; ok {
		return states
	}

	now := time.Now()
	states := make([]collectionState, 0, len(seedCollections))

	for _, seed := range seedCollections {
		quoteIDs := make([]string, len(seed.quoteIDs))
		copy(quoteIDs, seed.quoteIDs)

		states = append(states, collectionState{
			collection: domain.Collection{
				ID:          seed.id,
				UserID:      userID,
				Name:        seed.name,
				Description: seed.description,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			quoteIDs: quoteIDs,
		})
	}

	b.collections[userID] = states

	return states
}

// findCollectionLocked returns a pointer into the stored collection state,
// or nil when the id is unknown. Callers must hold mu.
func (b *Backend) findCollectionLocked(collectionID string) *collectionState {
	for userID := range b.collections {
		states := b.collections[userID]
		for i := range states {
			if states[i].collection.ID == collectionID {
				return &states[i]
			}
		}
	}

	return nil
}

// sleep simulates network latency, honoring context cancellation.
func (b *Backend) sleep(ctx context.Context) error {
	if b.latency == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(b.latency):
		return nil
	}
}
