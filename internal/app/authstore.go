package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/platform/storage"
	"github.com/quotevault/quotevault/internal/ports"
)

// userStorageKey is where the signed-in profile persists between runs.
// Sessions are deliberately not persisted; a restored user starts with a
// nil session.
const userStorageKey = "auth.user"

// AuthStore holds the authentication state machine: uninitialized until
// Initialize runs, then signed out (nil user) or signed in (non-nil
// user). It implements ports.Identity for the quote store.
type AuthStore struct {
	backend ports.AuthBackend
	store   *storage.FileStore
	logger  *slog.Logger

	mu          sync.RWMutex
	user        *domain.User
	session     *domain.Session
	initialized bool
	loading     bool
}

// AuthStoreConfig contains dependencies for the auth store.
type AuthStoreConfig struct {
	Backend ports.AuthBackend
	Store   *storage.FileStore
	Logger  *slog.Logger
}

// NewAuthStore creates an auth store. Panics if Backend or Store is nil.
func NewAuthStore(cfg AuthStoreConfig) *AuthStore {
	if cfg.Backend == nil {
		panic("AuthStore: Backend is required")
	}
	if cfg.Store == nil {
		panic("AuthStore: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthStore{
		backend: cfg.Backend,
		store:   cfg.Store,
		logger:  logger.With(slog.String("component", "app.AuthStore")),
	}
}

// Initialize restores a persisted profile from disk, if any, and marks
// the store initialized. Calling it again is a no-op. A restored user
// has no session.
func (s *AuthStore) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}

	s.loading = true
	defer func() {
		s.loading = false
		s.initialized = true
	}()

	var user domain.User
	if err := s.store.Get(userStorageKey, &user); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.WarnContext(ctx, "stored profile unreadable, starting signed out",
				slog.Any("error", err),
			)
		}

		return
	}

	s.user = &user
	s.logger.InfoContext(ctx, "restored signed-in user",
		slog.String("user_id", user.ID),
	)
}

// SignUp creates an account and signs it in. Authentication failures are
// returned to the caller; persistence failures are logged only.
func (s *AuthStore) SignUp(ctx context.Context, email, password, name string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	result, err := s.backend.SignUp(ctx, email, password, name)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	s.adopt(ctx, result)

	return nil
}

// SignIn authenticates existing credentials and signs the user in.
func (s *AuthStore) SignIn(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	result, err := s.backend.SignIn(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	s.adopt(ctx, result)

	return nil
}

// SignOut clears the local user and session unconditionally. Backend
// invalidation is best effort; its failure never blocks the local sign
// out.
func (s *AuthStore) SignOut(ctx context.Context) {
	s.mu.Lock()
	session := s.session
	s.user = nil
	s.session = nil
	s.mu.Unlock()

	if err := s.store.Delete(userStorageKey); err != nil {
		s.logger.WarnContext(ctx, "stored profile removal failed",
			slog.Any("error", err),
		)
	}

	if err := s.backend.SignOut(ctx, session); err != nil {
		s.logger.WarnContext(ctx, "remote sign out failed",
			slog.Any("error", err),
		)
	}
}

// ResetPassword requests a password reset email for the address.
func (s *AuthStore) ResetPassword(ctx context.Context, email string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.backend.ResetPassword(ctx, email); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	return nil
}

// UpdateProfile merges the update into the signed-in profile after the
// backend accepted it. Errors when signed out.
func (s *AuthStore) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()

	if user == nil {
		return domain.NewAuthError("no signed-in user")
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.backend.UpdateProfile(ctx, user.ID, update); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	s.mu.Lock()
	// A sign-out may have landed while the backend call was in flight.
	if s.user == nil {
		s.mu.Unlock()

		return domain.NewAuthError("no signed-in user")
	}
	merged := update.Apply(*s.user)
	s.user = &merged
	s.mu.Unlock()

	s.persist(ctx, merged)

	return nil
}

// CurrentUserID implements ports.Identity.
func (s *AuthStore) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return ""
	}

	return s.user.ID
}

// User returns a copy of the signed-in profile, or nil when signed out.
func (s *AuthStore) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}

	u := *s.user

	return &u
}

// Session returns a copy of the current session, or nil. A restored
// user has no session until the next sign in.
func (s *AuthStore) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}

	sess := *s.session

	return &sess
}

// IsAuthenticated reports whether a user is signed in.
func (s *AuthStore) IsAuthenticated() bool {
	return s.CurrentUserID() != ""
}

// IsInitialized reports whether Initialize has completed.
func (s *AuthStore) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.initialized
}

// IsLoading reports whether an auth operation is in flight.
func (s *AuthStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// adopt installs a successful auth result and persists the profile.
func (s *AuthStore) adopt(ctx context.Context, result *ports.AuthResult) {
	user := result.User
	session := result.Session

	s.mu.Lock()
	s.user = &user
	s.session = &session
	s.mu.Unlock()

	s.persist(ctx, user)
}

// persist writes the profile to disk. Failure is logged, never surfaced.
func (s *AuthStore) persist(ctx context.Context, user domain.User) {
	if err := s.store.Set(userStorageKey, user); err != nil {
		s.logger.WarnContext(ctx, "profile persistence failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}
}

// setLoading flips the loading flag.
func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
