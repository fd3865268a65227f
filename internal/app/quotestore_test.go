package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/catalog"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// fakeIdentity is a static ports.Identity.
type fakeIdentity string

func (f fakeIdentity) CurrentUserID() string { return string(f) }

// fakeBackend implements ports.Backend with canned data and per-call
// error injection.
type fakeBackend struct {
	quotes      []domain.Quote
	daily       *domain.Quote
	favorites   []string
	collections []ports.CollectionRecord

	listErr   error
	dailyErr  error
	favErr    error
	mutateErr error

	addedFavorites   []string
	removedFavorites []string
}

func (f *fakeBackend) ListQuotes(context.Context) ([]domain.Quote, error) {
	return f.quotes, f.listErr
}

func (f *fakeBackend) QuoteOfDay(context.Context, string) (*domain.Quote, error) {
	if f.dailyErr != nil {
		return nil, f.dailyErr
	}

	return f.daily, nil
}

func (f *fakeBackend) ListFavorites(context.Context, string) ([]string, error) {
	return f.favorites, f.favErr
}

func (f *fakeBackend) AddFavorite(_ context.Context, _, quoteID string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}

	f.addedFavorites = append(f.addedFavorites, quoteID)

	return nil
}

func (f *fakeBackend) RemoveFavorite(_ context.Context, _, quoteID string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}

	f.removedFavorites = append(f.removedFavorites, quoteID)

	return nil
}

func (f *fakeBackend) ListCollections(context.Context, string) ([]ports.CollectionRecord, error) {
	return f.collections, f.listErr
}

func (f *fakeBackend) InsertCollection(_ context.Context, c domain.Collection) (*domain.Collection, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}

	c.ID = "col-new"
	c.CreatedAt = time.Now()

	return &c, nil
}

func (f *fakeBackend) DeleteCollection(context.Context, string) error {
	return f.mutateErr
}

func (f *fakeBackend) AddCollectionQuote(context.Context, string, string) error {
	return f.mutateErr
}

func (f *fakeBackend) RemoveCollectionQuote(context.Context, string, string) error {
	return f.mutateErr
}

func newTestStore(t *testing.T, backend *fakeBackend, userID string) *QuoteStore {
	t.Helper()

	return NewQuoteStore(QuoteStoreConfig{
		Backend:  backend,
		Identity: fakeIdentity(userID),
		Now:      func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) },
	})
}

func testQuotes() []domain.Quote {
	return []domain.Quote{
		{ID: "q1", Text: "The only way out is through", Author: "Robert Frost", Category: domain.CategoryLife},
		{ID: "q2", Text: "Stay hungry, stay foolish", Author: "Steve Jobs", Category: domain.CategoryMotivation},
		{ID: "q3", Text: "Know thyself", Author: "Socrates", Category: domain.CategoryWisdom},
	}
}

func TestQuoteStore_FetchQuotes(t *testing.T) {
	backend := &fakeBackend{quotes: testQuotes()}
	store := newTestStore(t, backend, "user-1")

	store.FetchQuotes(context.Background())

	got := store.Quotes()
	require.Len(t, got, 3)
	assert.Equal(t, "q1", got[0].ID)
	assert.False(t, store.IsLoading())
}

func TestQuoteStore_FetchQuotesFallsBackToCatalog(t *testing.T) {
	backend := &fakeBackend{listErr: domain.NewUnavailableError("quote-tables", "connection refused")}
	store := newTestStore(t, backend, "user-1")

	store.FetchQuotes(context.Background())

	assert.Len(t, store.Quotes(), catalog.Len())
}

func TestQuoteStore_FetchQuoteOfDay(t *testing.T) {
	t.Run("backend pick wins", func(t *testing.T) {
		daily := testQuotes()[1]
		backend := &fakeBackend{daily: &daily}
		store := newTestStore(t, backend, "user-1")

		store.FetchQuoteOfDay(context.Background())

		got := store.QuoteOfDay()
		require.NotNil(t, got)
		assert.Equal(t, "q2", got.ID)
		assert.True(t, got.QuoteOfDay)
	})

	t.Run("no pick falls back to loaded quotes", func(t *testing.T) {
		backend := &fakeBackend{
			quotes:   testQuotes(),
			dailyErr: domain.NewNotFoundError("quote_of_day", "2026-03-15"),
		}
		store := newTestStore(t, backend, "user-1")
		store.FetchQuotes(context.Background())

		store.FetchQuoteOfDay(context.Background())

		got := store.QuoteOfDay()
		require.NotNil(t, got)
		assert.True(t, got.QuoteOfDay)
		assert.Contains(t, []string{"q1", "q2", "q3"}, got.ID)
	})

	t.Run("nothing loaded falls back to catalog", func(t *testing.T) {
		backend := &fakeBackend{dailyErr: domain.NewNotFoundError("quote_of_day", "2026-03-15")}
		store := newTestStore(t, backend, "user-1")

		store.FetchQuoteOfDay(context.Background())

		got := store.QuoteOfDay()
		require.NotNil(t, got)
		want := catalog.QuoteOfDay(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
		assert.Equal(t, want.ID, got.ID)
	})
}

func TestQuoteStore_ToggleFavorite(t *testing.T) {
	t.Run("toggling twice restores the original set", func(t *testing.T) {
		backend := &fakeBackend{}
		store := newTestStore(t, backend, "user-1")
		ctx := context.Background()

		store.ToggleFavorite(ctx, "q1")
		assert.True(t, store.IsFavorite("q1"))

		store.ToggleFavorite(ctx, "q1")
		assert.False(t, store.IsFavorite("q1"))
		assert.Equal(t, []string{"q1"}, backend.addedFavorites)
		assert.Equal(t, []string{"q1"}, backend.removedFavorites)
	})

	t.Run("backend failure leaves the set unchanged", func(t *testing.T) {
		backend := &fakeBackend{mutateErr: domain.NewUnavailableError("quote-tables", "timeout")}
		store := newTestStore(t, backend, "user-1")

		store.ToggleFavorite(context.Background(), "q1")

		assert.False(t, store.IsFavorite("q1"))
	})

	t.Run("signed out is a no-op", func(t *testing.T) {
		backend := &fakeBackend{}
		store := newTestStore(t, backend, "")

		store.ToggleFavorite(context.Background(), "q1")

		assert.Empty(t, backend.addedFavorites)
	})
}

func TestQuoteStore_FetchFavorites(t *testing.T) {
	backend := &fakeBackend{favorites: []string{"q2", "q3"}}
	store := newTestStore(t, backend, "user-1")

	store.FetchFavorites(context.Background())

	assert.Equal(t, []string{"q2", "q3"}, store.Favorites())
}

func TestQuoteStore_FetchCollectionsRecomputesCounts(t *testing.T) {
	backend := &fakeBackend{
		collections: []ports.CollectionRecord{
			{
				// A stale stored count must be ignored.
				Collection: domain.Collection{ID: "col-1", Name: "Morning", QuoteCount: 99},
				QuoteIDs:   []string{"q1", "q3"},
			},
			{
				Collection: domain.Collection{ID: "col-2", Name: "Work"},
				QuoteIDs:   nil,
			},
		},
	}
	store := newTestStore(t, backend, "user-1")

	store.FetchCollections(context.Background())

	got := store.Collections()
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].QuoteCount)
	assert.Equal(t, 0, got[1].QuoteCount)
}

func TestQuoteStore_CreateCollection(t *testing.T) {
	t.Run("prepends the new collection", func(t *testing.T) {
		backend := &fakeBackend{
			collections: []ports.CollectionRecord{
				{Collection: domain.Collection{ID: "col-1", Name: "Old"}},
			},
		}
		store := newTestStore(t, backend, "user-1")
		ctx := context.Background()
		store.FetchCollections(ctx)

		store.CreateCollection(ctx, "  Fresh  ", "new ideas")

		got := store.Collections()
		require.Len(t, got, 2)
		assert.Equal(t, "col-new", got[0].ID)
		assert.Equal(t, "Fresh", got[0].Name)
		assert.Equal(t, 0, got[0].QuoteCount)
	})

	t.Run("blank name is ignored", func(t *testing.T) {
		backend := &fakeBackend{}
		store := newTestStore(t, backend, "user-1")

		store.CreateCollection(context.Background(), "   ", "desc")

		assert.Empty(t, store.Collections())
	})
}

func TestQuoteStore_CollectionMembership(t *testing.T) {
	newSeeded := func(t *testing.T) (*QuoteStore, *fakeBackend) {
		t.Helper()

		backend := &fakeBackend{
			quotes: testQuotes(),
			collections: []ports.CollectionRecord{
				{Collection: domain.Collection{ID: "col-1", Name: "Morning"}, QuoteIDs: []string{"q1"}},
			},
		}
		store := newTestStore(t, backend, "user-1")
		ctx := context.Background()
		store.FetchQuotes(ctx)
		store.FetchCollections(ctx)

		return store, backend
	}

	t.Run("add updates membership and count together", func(t *testing.T) {
		store, _ := newSeeded(t)

		store.AddQuoteToCollection(context.Background(), "col-1", "q2")

		got := store.CollectionQuotes("col-1")
		require.Len(t, got, 2)
		assert.Equal(t, "q1", got[0].ID)
		assert.Equal(t, "q2", got[1].ID)
		assert.Equal(t, 2, store.Collections()[0].QuoteCount)
	})

	t.Run("adding a present quote is a no-op", func(t *testing.T) {
		store, _ := newSeeded(t)

		store.AddQuoteToCollection(context.Background(), "col-1", "q1")

		assert.Len(t, store.CollectionQuotes("col-1"), 1)
		assert.Equal(t, 1, store.Collections()[0].QuoteCount)
	})

	t.Run("remove updates membership and count together", func(t *testing.T) {
		store, _ := newSeeded(t)

		store.RemoveQuoteFromCollection(context.Background(), "col-1", "q1")

		assert.Empty(t, store.CollectionQuotes("col-1"))
		assert.Equal(t, 0, store.Collections()[0].QuoteCount)
	})

	t.Run("removing an absent quote is a no-op", func(t *testing.T) {
		store, _ := newSeeded(t)

		store.RemoveQuoteFromCollection(context.Background(), "col-1", "q9")

		assert.Len(t, store.CollectionQuotes("col-1"), 1)
	})

	t.Run("unknown collection is a no-op", func(t *testing.T) {
		store, backend := newSeeded(t)
		backend.mutateErr = domain.NewNotFoundError("collection", "col-9")

		store.AddQuoteToCollection(context.Background(), "col-9", "q1")

		assert.Empty(t, store.CollectionQuotes("col-9"))
	})

	t.Run("ids missing from the loaded list are omitted", func(t *testing.T) {
		store, _ := newSeeded(t)
		store.AddQuoteToCollection(context.Background(), "col-1", "q-unloaded")

		got := store.CollectionQuotes("col-1")

		require.Len(t, got, 1)
		assert.Equal(t, "q1", got[0].ID)
	})
}

func TestQuoteStore_DeleteCollection(t *testing.T) {
	backend := &fakeBackend{
		collections: []ports.CollectionRecord{
			{Collection: domain.Collection{ID: "col-1", Name: "Morning"}, QuoteIDs: []string{"q1"}},
		},
	}
	store := newTestStore(t, backend, "user-1")
	ctx := context.Background()
	store.FetchCollections(ctx)

	store.DeleteCollection(ctx, "col-1")
	assert.Empty(t, store.Collections())

	// Deleting again stays a no-op.
	store.DeleteCollection(ctx, "col-1")
	assert.Empty(t, store.Collections())
}

func TestQuoteStore_FilteredQuotes(t *testing.T) {
	backend := &fakeBackend{quotes: testQuotes()}
	store := newTestStore(t, backend, "user-1")
	store.FetchQuotes(context.Background())

	t.Run("no filters returns everything", func(t *testing.T) {
		store.SetSearchQuery("")
		store.SetSelectedCategory(nil)

		assert.Len(t, store.FilteredQuotes(), 3)
	})

	t.Run("category narrows the list", func(t *testing.T) {
		category := domain.CategoryWisdom
		store.SetSearchQuery("")
		store.SetSelectedCategory(&category)

		got := store.FilteredQuotes()

		require.Len(t, got, 1)
		assert.Equal(t, "q3", got[0].ID)
	})

	t.Run("query matches text or author, not category", func(t *testing.T) {
		store.SetSelectedCategory(nil)
		store.SetSearchQuery("wisdom")

		assert.Empty(t, store.FilteredQuotes())

		store.SetSearchQuery("FROST")

		got := store.FilteredQuotes()
		require.Len(t, got, 1)
		assert.Equal(t, "q1", got[0].ID)
	})

	t.Run("whitespace query is matched literally", func(t *testing.T) {
		store.SetSelectedCategory(nil)
		store.SetSearchQuery("   ")

		assert.Empty(t, store.FilteredQuotes())
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		category := domain.CategoryMotivation
		store.SetSelectedCategory(&category)
		store.SetSearchQuery("socrates")

		assert.Empty(t, store.FilteredQuotes())
	})
}

func TestQuoteStore_SearchQuotes(t *testing.T) {
	backend := &fakeBackend{quotes: testQuotes()}
	store := newTestStore(t, backend, "user-1")
	store.FetchQuotes(context.Background())

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, store.SearchQuotes(""), 3)
	})

	t.Run("whitespace is matched literally", func(t *testing.T) {
		assert.Empty(t, store.SearchQuotes("  "))
	})

	t.Run("matches category unlike the list filter", func(t *testing.T) {
		got := store.SearchQuotes("wisdom")

		require.Len(t, got, 1)
		assert.Equal(t, "q3", got[0].ID)
	})

	t.Run("matches author case-insensitively", func(t *testing.T) {
		got := store.SearchQuotes("steve")

		require.Len(t, got, 1)
		assert.Equal(t, "q2", got[0].ID)
	})
}

func TestQuoteStore_Warm(t *testing.T) {
	daily := testQuotes()[0]
	backend := &fakeBackend{
		quotes:    testQuotes(),
		daily:     &daily,
		favorites: []string{"q2"},
		collections: []ports.CollectionRecord{
			{Collection: domain.Collection{ID: "col-1", Name: "Morning"}, QuoteIDs: []string{"q1"}},
		},
	}
	store := newTestStore(t, backend, "user-1")

	store.Warm(context.Background())

	assert.Len(t, store.Quotes(), 3)
	assert.NotNil(t, store.QuoteOfDay())
	assert.Equal(t, []string{"q2"}, store.Favorites())
	assert.Len(t, store.Collections(), 1)
}
