// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// The data-access surface has exactly two implementations: the demo
// adapter (static in-memory data, no network) and the tables adapter
// (the hosted table store). Stores never branch on which one is active.
package ports

import (
	"context"

	"github.com/quotevault/quotevault/internal/domain"
)

// QuoteBackend serves the quote catalog and the daily pick.
type QuoteBackend interface {
	// ListQuotes returns every quote, newest first.
	// Returns domain.ErrUnavailable if the source is unreachable.
	ListQuotes(ctx context.Context) ([]domain.Quote, error)

	// QuoteOfDay returns the recorded pick for the given "YYYY-MM-DD"
	// date. Returns domain.ErrNotFound if no pick is recorded.
	QuoteOfDay(ctx context.Context, date string) (*domain.Quote, error)
}

// FavoriteBackend persists the per-user favorite set.
type FavoriteBackend interface {
	// ListFavorites returns the quote ids the user has favorited,
	// in the order they were added.
	ListFavorites(ctx context.Context, userID string) ([]string, error)

	// AddFavorite records a favorite. Adding an existing favorite is
	// not an error.
	AddFavorite(ctx context.Context, userID, quoteID string) error

	// RemoveFavorite deletes a favorite. Removing an absent favorite
	// is not an error.
	RemoveFavorite(ctx context.Context, userID, quoteID string) error
}

// CollectionRecord pairs a collection with its membership, in add order.
type CollectionRecord struct {
	Collection domain.Collection
	QuoteIDs   []string
}

// CollectionBackend persists user collections and their memberships.
type CollectionBackend interface {
	// ListCollections returns the user's collections newest first,
	// each with its full membership.
	ListCollections(ctx context.Context, userID string) ([]CollectionRecord, error)

	// InsertCollection stores a new collection and returns it with
	// backend-assigned fields filled in.
	InsertCollection(ctx context.Context, c domain.Collection) (*domain.Collection, error)

	// DeleteCollection removes a collection and its membership rows.
	// Deleting an absent id is not an error.
	DeleteCollection(ctx context.Context, id string) error

	// AddCollectionQuote adds a quote to a collection's membership.
	AddCollectionQuote(ctx context.Context, collectionID, quoteID string) error

	// RemoveCollectionQuote removes a quote from a collection's
	// membership. Removing an absent pair is not an error.
	RemoveCollectionQuote(ctx context.Context, collectionID, quoteID string) error
}

// Backend is the full data-access surface the quote store depends on.
type Backend interface {
	QuoteBackend
	FavoriteBackend
	CollectionBackend
}

// AuthResult is the outcome of a successful sign-up or sign-in.
type AuthResult struct {
	User    domain.User
	Session domain.Session
}

// AuthBackend performs account operations.
// Credential failures are reported as domain.AuthError values; those are
// the only errors surfaced to end users.
type AuthBackend interface {
	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, email, password, name string) (*AuthResult, error)

	// SignIn authenticates existing credentials.
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)

	// SignOut invalidates the session. Callers clear local state even
	// if this fails.
	SignOut(ctx context.Context, session *domain.Session) error

	// ResetPassword requests a password reset email. Success means the
	// request was accepted, not that the password changed.
	ResetPassword(ctx context.Context, email string) error

	// UpdateProfile persists profile changes for the user.
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error
}

// Identity reports the currently signed-in user, if any.
// The auth store implements this for the quote store.
type Identity interface {
	// CurrentUserID returns the signed-in user's id, or "" when
	// signed out.
	CurrentUserID() string
}
