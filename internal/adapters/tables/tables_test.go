package tables

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/platform/config"
)

// newTestBackend wires a backend to an httptest server with retries held
// to a single attempt.
func newTestBackend(t *testing.T, handler http.Handler) *Backend {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		BaseURL:     server.URL,
		ServiceName: serviceName,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	})
	require.NoError(t, err)

	return New(Config{Client: client})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestBackend_ListQuotes(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/quotes", r.URL.Path)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))

		writeJSON(t, w, http.StatusOK, []quoteRow{
			{ID: "2", Text: "Later quote", Author: "B", Category: "wisdom", CreatedAt: "2026-02-01T00:00:00Z"},
			{ID: "1", Text: "Earlier quote", Author: "A", Category: "motivation", CreatedAt: "2026-01-01T00:00:00Z"},
		})
	}))

	quotes, err := b.ListQuotes(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "2", quotes[0].ID)
	assert.Equal(t, domain.CategoryWisdom, quotes[0].Category)
	assert.Equal(t, "1", quotes[1].ID)
}

func TestBackend_ListQuotes_UnknownCategory(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []quoteRow{
			{ID: "1", Text: "x", Author: "A", Category: "astrology"},
		})
	}))

	_, err := b.ListQuotes(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestBackend_QuoteOfDay(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/quote_of_day", r.URL.Path)
		assert.Equal(t, "eq.2026-08-30", r.URL.Query().Get("date"))

		writeJSON(t, w, http.StatusOK, []dailyQuoteRow{
			{Date: "2026-08-30", Quote: quoteRow{ID: "42", Text: "The pick", Author: "C", Category: "life"}},
		})
	}))

	quote, err := b.QuoteOfDay(context.Background(), "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "42", quote.ID)
}

func TestBackend_QuoteOfDay_NoPick(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []dailyQuoteRow{})
	}))

	_, err := b.QuoteOfDay(context.Background(), "2026-08-30")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestBackend_Favorites(t *testing.T) {
	var addedPrefer string

	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))
			writeJSON(t, w, http.StatusOK, []favoriteRow{
				{UserID: "user-1", QuoteID: "1"},
				{UserID: "user-1", QuoteID: "16"},
			})
		case http.MethodPost:
			addedPrefer = r.Header.Get("Prefer")
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			assert.Equal(t, "eq.16", r.URL.Query().Get("quote_id"))
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	ctx := context.Background()

	ids, err := b.ListFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "16"}, ids)

	require.NoError(t, b.AddFavorite(ctx, "user-1", "5"))
	assert.Equal(t, "resolution=ignore-duplicates", addedPrefer)

	require.NoError(t, b.RemoveFavorite(ctx, "user-1", "16"))
}

func TestBackend_ListCollections(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/collections":
			writeJSON(t, w, http.StatusOK, []collectionRow{
				{ID: "col-2", UserID: "user-1", Name: "Work Inspiration", CreatedAt: "2026-02-01T00:00:00Z"},
				{ID: "col-1", UserID: "user-1", Name: "Morning Motivation", CreatedAt: "2026-01-01T00:00:00Z"},
			})
		case "/rest/v1/collection_quotes":
			assert.Contains(t, r.URL.Query().Get("collection_id"), "in.(")
			writeJSON(t, w, http.StatusOK, []collectionQuoteRow{
				{CollectionID: "col-1", QuoteID: "1"},
				{CollectionID: "col-1", QuoteID: "4"},
				{CollectionID: "col-2", QuoteID: "31"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	records, err := b.ListCollections(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "col-2", records[0].Collection.ID)
	assert.Equal(t, []string{"31"}, records[0].QuoteIDs)
	assert.Equal(t, []string{"1", "4"}, records[1].QuoteIDs)
}

func TestBackend_InsertCollection(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Evening Calm", payload["name"])

		writeJSON(t, w, http.StatusCreated, []collectionRow{
			{ID: "col-3", UserID: "user-1", Name: "Evening Calm", CreatedAt: "2026-08-30T00:00:00Z"},
		})
	}))

	created, err := b.InsertCollection(context.Background(), domain.Collection{
		UserID: "user-1",
		Name:   "Evening Calm",
	})
	require.NoError(t, err)
	assert.Equal(t, "col-3", created.ID)
}

func TestBackend_ServerError(t *testing.T) {
	b := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, apiError{Message: "maintenance"})
	}))

	_, err := b.ListQuotes(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestAuth_SignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		writeJSON(t, w, http.StatusOK, sessionResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
			User: authUserBody{
				ID:       "user-1",
				Email:    "quote.lover@example.com",
				Metadata: map[string]string{"name": "Quote Lover"},
			},
		})
	}))
	t.Cleanup(server.Close)

	auth := newTestAuth(t, server)

	result, err := auth.SignIn(context.Background(), "quote.lover@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "Quote Lover", result.User.DisplayName)
	assert.Equal(t, "access", result.Session.AccessToken)
	assert.True(t, result.Session.ExpiresAt.After(time.Now()))
}

func TestAuth_SignIn_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, apiError{ErrorDescription: "Invalid login credentials"})
	}))
	t.Cleanup(server.Close)

	auth := newTestAuth(t, server)

	_, err := auth.SignIn(context.Background(), "quote.lover@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthenticated(err))
	assert.Contains(t, err.Error(), "Invalid login credentials")
}

func TestAuth_UpdateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/users", r.URL.Path)
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("id"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]string{"display_name": "Renamed", "theme": "ocean"}, payload)

		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	auth := newTestAuth(t, server)

	name := "Renamed"
	theme := "ocean"
	err := auth.UpdateProfile(context.Background(), "user-1", domain.ProfileUpdate{
		DisplayName: &name,
		Theme:       &theme,
	})
	require.NoError(t, err)
}

func TestAuth_UpdateProfile_NoChanges(t *testing.T) {
	// No request should be made when there is nothing to patch.
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("unexpected request")
	}))
	t.Cleanup(server.Close)

	auth := newTestAuth(t, server)

	require.NoError(t, auth.UpdateProfile(context.Background(), "user-1", domain.ProfileUpdate{}))
}

func newTestAuth(t *testing.T, server *httptest.Server) *Auth {
	t.Helper()

	client, err := clients.New(&clients.Config{
		BaseURL:     server.URL,
		ServiceName: serviceName,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	})
	require.NoError(t, err)

	return NewAuth(Config{Client: client})
}
