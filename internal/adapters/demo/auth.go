package demo

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// demoSessionTTL is how long a simulated session stays valid.
const demoSessionTTL = 24 * time.Hour

// Auth is an in-memory implementation of ports.AuthBackend.
// Any credentials are accepted; profile updates persist for the life of
// the process only.
type Auth struct {
	latency time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	profiles map[string]domain.User // userID -> last known profile
}

// NewAuth creates a demo auth backend.
func NewAuth(cfg Config) *Auth {
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

	return &Auth{
		latency:  latency,
		logger:   logger.With(slog.String("component", "demo.Auth")),
		profiles: make(map[string]domain.User),
	}
}

// SignUp creates a demo account with the given name and signs it in.
func (a *Auth) SignUp(ctx context.Context, email, _, name string) (*ports.AuthResult, error) {
	if err := a.sleep(ctx); err != nil {
		return nil, err
	}

	user := domain.User{
		ID:               uuid.NewString(),
		Email:            email,
		DisplayName:      name,
		CreatedAt:        time.Now(),
		NotificationTime: "09:00",
	}

	a.remember(user)

	return &ports.AuthResult{User: user, Session: a.newSession(user.ID)}, nil
}

// SignIn accepts any credentials. The display name is derived from the
// part of the email before the "@", falling back to "Quote Lover" when
// that part is empty.
func (a *Auth) SignIn(ctx context.Context, email, _ string) (*ports.AuthResult, error) {
	if err := a.sleep(ctx); err != nil {
		return nil, err
	}

	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	if name == "" {
		name = "Quote Lover"
	}

	user := domain.User{
		ID:               "demo-user-1",
		Email:            email,
		DisplayName:      name,
		CreatedAt:        time.Now(),
		NotificationTime: "09:00",
	}

	if known, ok := a.lookupByEmail(email); ok {
		user = known
	} else {
		a.remember(user)
	}

	return &ports.AuthResult{User: user, Session: a.newSession(user.ID)}, nil
}

// SignOut discards the session.
func (a *Auth) SignOut(ctx context.Context, _ *domain.Session) error {
	return a.sleep(ctx)
}

// ResetPassword pretends to send the reset email.
func (a *Auth) ResetPassword(ctx context.Context, email string) error {
	if err := a.sleep(ctx); err != nil {
		return err
	}

	a.logger.Info("password reset requested", slog.String("email", email))

	return nil
}

// UpdateProfile applies the update to the in-memory profile.
func (a *Auth) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	if err := a.sleep(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if user, ok := a.profiles[userID]; ok {
		a.profiles[userID] = update.Apply(user)
	}

	return nil
}

func (a *Auth) newSession(userID string) domain.Session {
	return domain.Session{
		UserID:       userID,
		AccessToken:  uuid.NewString(),
		RefreshToken: uuid.NewString(),
		ExpiresAt:    time.Now().Add(demoSessionTTL),
	}
}

func (a *Auth) remember(user domain.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.profiles[user.ID] = user
}

func (a *Auth) lookupByEmail(email string) (domain.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, user := range a.profiles {
		if user.Email == email {
			return user, true
		}
	}

	return domain.User{}, false
}

func (a *Auth) sleep(ctx context.Context) error {
	if a.latency == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(a.latency):
		return nil
	}
}
