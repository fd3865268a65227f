package tables

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/ports"
)

// authPrefix is the path prefix for account operations.
const authPrefix = "/auth/v1"

// sessionResponse is the token payload returned by signup and password
// sign-in.
type sessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         authUserBody `json:"user"`
}

type authUserBody struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	CreatedAt string            `json:"created_at"`
	Metadata  map[string]string `json:"user_metadata"`
}

// Auth implements ports.AuthBackend against the table store's account
// endpoints.
type Auth struct {
	client *clients.Client
	logger *slog.Logger
}

// NewAuth creates a tables auth backend. Panics if Client is nil.
func NewAuth(cfg Config) *Auth {
	if cfg.Client == nil {
		panic("tables.Auth: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Auth{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "tables.Auth")),
	}
}

// SignUp creates an account and returns its first session.
func (a *Auth) SignUp(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"name": name},
	}

	return a.requestSession(ctx, authPrefix+"/signup", payload, "sign up")
}

// SignIn exchanges credentials for a session.
func (a *Auth) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	return a.requestSession(ctx, authPrefix+"/token?grant_type=password", payload, "sign in")
}

// SignOut revokes the session's tokens.
func (a *Auth) SignOut(ctx context.Context, session *domain.Session) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.BaseURL()+authPrefix+"/logout", http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if session != nil {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := a.client.Do(ctx, req)
	if err != nil {
		return mapHTTPError(nil, err, "sign out", "")
	}
	defer func() { _ = resp.Body.Close() }()

	return mapHTTPError(resp, nil, "sign out", "")
}

// ResetPassword asks the store to send a password reset email.
func (a *Auth) ResetPassword(ctx context.Context, email string) error {
	raw, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := a.client.Post(ctx, authPrefix+"/recover", bytes.NewReader(raw))
	if err != nil {
		return mapHTTPError(nil, err, "reset password", "")
	}
	defer func() { _ = resp.Body.Close() }()

	return mapHTTPError(resp, nil, "reset password", "")
}

// UpdateProfile patches the user's row with the changed fields only.
func (a *Auth) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	payload := make(map[string]string)

	if update.DisplayName != nil {
		payload["display_name"] = *update.DisplayName
	}
	if update.AvatarURL != nil {
		payload["avatar_url"] = *update.AvatarURL
	}
	if update.NotificationTime != nil {
		payload["notification_time"] = *update.NotificationTime
	}
	if update.Theme != nil {
		payload["theme"] = *update.Theme
	}
	if update.FontSize != nil {
		payload["font_size"] = *update.FontSize
	}

	if len(payload) == 0 {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	path := restPrefix + "/users?id=eq." + url.QueryEscape(userID)

	resp, err := a.client.Patch(ctx, path, bytes.NewReader(raw))
	if err != nil {
		return mapHTTPError(nil, err, "update profile", userID)
	}
	defer func() { _ = resp.Body.Close() }()

	return mapHTTPError(resp, nil, "update profile", userID)
}

// requestSession POSTs credentials and translates the session payload.
func (a *Auth) requestSession(ctx context.Context, path string, payload map[string]any, operation string) (*ports.AuthResult, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := a.client.Post(ctx, path, bytes.NewReader(raw))
	if err != nil {
		return nil, mapHTTPError(nil, err, operation, "")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		// Credential failures come back as 400 with a description.
		// Surface those as auth errors so the message reaches the user.
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
			message := "invalid credentials"
			if apiErr := parseAPIError(resp.Body); apiErr != nil && apiErr.text() != "" {
				message = apiErr.text()
			}

			return nil, domain.NewAuthError(message)
		}

		return nil, mapHTTPError(resp, nil, operation, "")
	}

	session, err := decodeObject[sessionResponse](resp.Body)
	if err != nil {
		return nil, err
	}

	return translateSession(session)
}

// translateSession converts a token payload to an auth result.
func translateSession(s *sessionResponse) (*ports.AuthResult, error) {
	if s.AccessToken == "" || s.User.ID == "" {
		return nil, domain.NewAuthError("sign-in response missing session")
	}

	user := domain.User{
		ID:          s.User.ID,
		Email:       s.User.Email,
		DisplayName: s.User.Metadata["name"],
		CreatedAt:   parseTimestamp(s.User.CreatedAt),
	}

	return &ports.AuthResult{
		User: user,
		Session: domain.Session{
			UserID:       user.ID,
			AccessToken:  s.AccessToken,
			RefreshToken: s.RefreshToken,
			ExpiresAt:    time.Now().Add(time.Duration(s.ExpiresIn) * time.Second),
		},
	}, nil
}
