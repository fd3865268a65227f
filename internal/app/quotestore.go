// Package app contains the application stores that hold client state and
// orchestrate use cases against the backend ports.
//
// Stores own their state exclusively. Fetches replace whole slices,
// mutations apply locally only after the backend accepted them, and no
// quote or collection operation surfaces an error to callers: failures
// fall back to local defaults or leave state unchanged and log.
package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/quotevault/quotevault/internal/catalog"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// QuoteStore holds the quote list, the quote of the day, the favorite
// set, collections and their membership, and the current filter state.
// All methods are safe for concurrent use; racing writes follow
// last-write-wins.
type QuoteStore struct {
	backend  ports.Backend
	identity ports.Identity
	logger   *slog.Logger
	now      func() time.Time

	mu               sync.RWMutex
	quotes           []domain.Quote
	quoteOfDay       *domain.Quote
	favorites        []string
	collections      []domain.Collection
	membership       map[string][]string
	loading          bool
	searchQuery      string
	selectedCategory *domain.Category
}

// QuoteStoreConfig contains dependencies for the quote store.
type QuoteStoreConfig struct {
	Backend  ports.Backend
	Identity ports.Identity
	Logger   *slog.Logger

	// Now overrides the clock, used by tests. Defaults to time.Now.
	Now func() time.Time
}

// NewQuoteStore creates a quote store. Panics if Backend or Identity is nil.
func NewQuoteStore(cfg QuoteStoreConfig) *QuoteStore {
	if cfg.Backend == nil {
		panic("QuoteStore: Backend is required")
	}
	if cfg.Identity == nil {
		panic("QuoteStore: Identity is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &QuoteStore{
		backend:    cfg.Backend,
		identity:   cfg.Identity,
		logger:     logger.With(slog.String("component", "app.QuoteStore")),
		now:        now,
		membership: make(map[string][]string),
	}
}

// FetchQuotes replaces the quote list from the backend. On failure the
// static catalog is used instead so the list is never left empty.
func (s *QuoteStore) FetchQuotes(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	quotes, err := s.backend.ListQuotes(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "quote fetch failed, using catalog",
			slog.Any("error", err),
		)

		quotes = catalog.All()
	}

	s.mu.Lock()
	s.quotes = quotes
	s.mu.Unlock()
}

// FetchQuoteOfDay sets the quote of the day for the current date.
// When the backend has no recorded pick, a random already-loaded quote
// is used; with no quotes loaded, the deterministic catalog pick.
func (s *QuoteStore) FetchQuoteOfDay(ctx context.Context) {
	today := s.now()

	quote, err := s.backend.QuoteOfDay(ctx, today.Format("2006-01-02"))
	if err == nil {
		picked := *quote
		picked.QuoteOfDay = true

		s.mu.Lock()
		s.quoteOfDay = &picked
		s.mu.Unlock()

		return
	}

	if !domain.IsNotFound(err) {
		s.logger.WarnContext(ctx, "quote of day fetch failed, using fallback",
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.quotes) > 0 {
		picked := s.quotes[rand.IntN(len(s.quotes))]
		picked.QuoteOfDay = true
		s.quoteOfDay = &picked

		return
	}

	picked := catalog.QuoteOfDay(today)
	s.quoteOfDay = &picked
}

// FetchFavorites replaces the favorite set for the current user.
// No-ops when signed out; on failure the set is left unchanged.
func (s *QuoteStore) FetchFavorites(ctx context.Context) {
	userID := s.identity.CurrentUserID()
	if userID == "" {
		return
	}

	ids, err := s.backend.ListFavorites(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "favorites fetch failed",
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	s.favorites = ids
	s.mu.Unlock()
}

// ToggleFavorite adds the quote to the favorite set if absent, removes it
// if present. The local set changes only after the backend accepted the
// mutation; failures leave it unchanged.
func (s *QuoteStore) ToggleFavorite(ctx context.Context, quoteID string) {
	userID := s.identity.CurrentUserID()
	if userID == "" {
		return
	}

	s.mu.RLock()
	present := slices.Contains(s.favorites, quoteID)
	s.mu.RUnlock()

	var err error
	if present {
		err = s.backend.RemoveFavorite(ctx, userID, quoteID)
	} else {
		err = s.backend.AddFavorite(ctx, userID, quoteID)
	}

	if err != nil {
		s.logger.WarnContext(ctx, "favorite toggle failed",
			slog.String("quote_id", quoteID),
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if present {
		s.favorites = slices.DeleteFunc(s.favorites, func(id string) bool {
			return id == quoteID
		})

		return
	}

	// Guard against a concurrent toggle that added it first.
	if !slices.Contains(s.favorites, quoteID) {
		s.favorites = append(s.favorites, quoteID)
	}
}

// IsFavorite reports whether the quote is in the favorite set.
func (s *QuoteStore) IsFavorite(quoteID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Contains(s.favorites, quoteID)
}

// FetchCollections replaces the collection list and the membership map.
// Quote counts are recomputed from membership, never trusted from the
// backend.
func (s *QuoteStore) FetchCollections(ctx context.Context) {
	userID := s.identity.CurrentUserID()
	if userID == "" {
		return
	}

	records, err := s.backend.ListCollections(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "collections fetch failed",
			slog.Any("error", err),
		)

		return
	}

	collections := make([]domain.Collection, 0, len(records))
	membership := make(map[string][]string, len(records))

	for _, record := range records {
		c := record.Collection
		c.QuoteCount = len(record.QuoteIDs)
		collections = append(collections, c)
		membership[c.ID] = record.QuoteIDs
	}

	s.mu.Lock()
	s.collections = collections
	s.membership = membership
	s.mu.Unlock()
}

// CreateCollection creates a collection and prepends it to the list.
// An empty name after trimming is silently ignored.
func (s *QuoteStore) CreateCollection(ctx context.Context, name, description string) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.DebugContext(ctx, "ignoring collection with empty name")

		return
	}

	userID := s.identity.CurrentUserID()
	if userID == "" {
		return
	}

	created, err := s.backend.InsertCollection(ctx, domain.Collection{
		UserID:      userID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "collection create failed",
			slog.String("name", name),
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created.QuoteCount = 0
	s.collections = append([]domain.Collection{*created}, s.collections...)
	s.membership[created.ID] = nil
}

// DeleteCollection removes the collection and its membership entry.
// Deleting an absent id is a no-op.
func (s *QuoteStore) DeleteCollection(ctx context.Context, id string) {
	if err := s.backend.DeleteCollection(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "collection delete failed",
			slog.String("collection_id", id),
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = slices.DeleteFunc(s.collections, func(c domain.Collection) bool {
		return c.ID == id
	})
	delete(s.membership, id)
}

// AddQuoteToCollection adds a quote to a collection's membership.
// Adding an already-present quote is a no-op; membership and quote count
// always change together.
func (s *QuoteStore) AddQuoteToCollection(ctx context.Context, collectionID, quoteID string) {
	s.mu.RLock()
	ids, known := s.membership[collectionID]
	present := slices.Contains(ids, quoteID)
	s.mu.RUnlock()

	if !known || present {
		return
	}

	if err := s.backend.AddCollectionQuote(ctx, collectionID, quoteID); err != nil {
		s.logger.WarnContext(ctx, "collection add failed",
			slog.String("collection_id", collectionID),
			slog.String("quote_id", quoteID),
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids = s.membership[collectionID]
	if slices.Contains(ids, quoteID) {
		return
	}

	s.membership[collectionID] = append(ids, quoteID)
	s.syncQuoteCountLocked(collectionID)
}

// RemoveQuoteFromCollection removes a quote from a collection's
// membership. Removing an absent quote is a no-op.
func (s *QuoteStore) RemoveQuoteFromCollection(ctx context.Context, collectionID, quoteID string) {
	s.mu.RLock()
	ids, known := s.membership[collectionID]
	present := slices.Contains(ids, quoteID)
	s.mu.RUnlock()

	if !known || !present {
		return
	}

	if err := s.backend.RemoveCollectionQuote(ctx, collectionID, quoteID); err != nil {
		s.logger.WarnContext(ctx, "collection remove failed",
			slog.String("collection_id", collectionID),
			slog.String("quote_id", quoteID),
			slog.Any("error", err),
		)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.membership[collectionID] = slices.DeleteFunc(s.membership[collectionID], func(id string) bool {
		return id == quoteID
	})
	s.syncQuoteCountLocked(collectionID)
}

// CollectionQuotes projects a collection's membership through the loaded
// quote list, preserving membership order. Quote ids not in the loaded
// list are omitted.
func (s *QuoteStore) CollectionQuotes(collectionID string) []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[string]domain.Quote, len(s.quotes))
	for _, q := range s.quotes {
		byID[q.ID] = q
	}

	var quotes []domain.Quote
	for _, id := range s.membership[collectionID] {
		if q, ok := byID[id]; ok {
			quotes = append(quotes, q)
		}
	}

	return quotes
}

// SetSearchQuery sets the text filter used by FilteredQuotes.
func (s *QuoteStore) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
}

// SetSelectedCategory sets the category filter. Nil clears it.
func (s *QuoteStore) SetSelectedCategory(category *domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == nil {
		s.selectedCategory = nil

		return
	}

	c := *category
	s.selectedCategory = &c
}

// FilteredQuotes applies the category filter, then a case-insensitive
// substring match of the search query against text or author. Both
// filters are conjunctive when both are set.
func (s *QuoteStore) FilteredQuotes() []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(s.searchQuery)
	result := make([]domain.Quote, 0, len(s.quotes))

	for _, q := range s.quotes {
		if s.selectedCategory != nil && q.Category != *s.selectedCategory {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(q.Text), query) &&
			!strings.Contains(strings.ToLower(q.Author), query) {
			continue
		}

		result = append(result, q)
	}

	return result
}

// SearchQuotes is a one-shot search matching text, author, or category,
// case-insensitively. An empty query returns the full list. Unlike
// FilteredQuotes this matches on category as well; the two rules are
// deliberately distinct.
func (s *QuoteStore) SearchQuotes(query string) []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	if query == "" {
		return slices.Clone(s.quotes)
	}

	result := make([]domain.Quote, 0, len(s.quotes))

	for _, q := range s.quotes {
		if strings.Contains(strings.ToLower(q.Text), query) ||
			strings.Contains(strings.ToLower(q.Author), query) ||
			strings.Contains(strings.ToLower(string(q.Category)), query) {
			result = append(result, q)
		}
	}

	return result
}

// Quotes returns a copy of the loaded quote list.
func (s *QuoteStore) Quotes() []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.quotes)
}

// QuoteOfDay returns the current quote of the day, or nil before the
// first fetch.
func (s *QuoteStore) QuoteOfDay() *domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.quoteOfDay == nil {
		return nil
	}

	q := *s.quoteOfDay

	return &q
}

// Favorites returns a copy of the favorite quote ids in add order.
func (s *QuoteStore) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.favorites)
}

// Collections returns a copy of the collection list, most recent first.
func (s *QuoteStore) Collections() []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.collections)
}

// IsLoading reports whether a quote list fetch is in flight.
func (s *QuoteStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Warm fetches quotes, the daily pick, favorites and collections
// concurrently. Partial failures degrade per the individual fetch rules.
func (s *QuoteStore) Warm(ctx context.Context) {
	ParallelPartial(ctx,
		func(ctx context.Context) (struct{}, error) {
			s.FetchQuotes(ctx)

			return struct{}{}, nil
		},
		func(ctx context.Context) (struct{}, error) {
			s.FetchFavorites(ctx)

			return struct{}{}, nil
		},
		func(ctx context.Context) (struct{}, error) {
			s.FetchCollections(ctx)

			return struct{}{}, nil
		},
	)

	// The random fallback needs the quote list, so this runs after.
	s.FetchQuoteOfDay(ctx)
}

// syncQuoteCountLocked keeps a collection's quote count equal to its
// membership length. Callers must hold mu.
func (s *QuoteStore) syncQuoteCountLocked(collectionID string) {
	for i := range s.collections {
		if s.collections[i].ID == collectionID {
			s.collections[i].QuoteCount = len(s.membership[collectionID])

			return
		}
	}
}

// setLoading flips the loading flag.
func (s *QuoteStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
