package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("quote", "q-42")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, `quote with id "q-42" not found`, err.Error())

	noID := &NotFoundError{Entity: "collection"}
	assert.Equal(t, "collection not found", noID.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "cannot be empty")

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation failed for name: cannot be empty", err.Error())

	var typed *ValidationError
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, "name", typed.Field)
}

func TestAuthError(t *testing.T) {
	err := NewAuthError("invalid email or password")

	assert.True(t, IsUnauthenticated(err))
	assert.False(t, IsUnavailable(err))
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("tables", "connection refused")

	assert.True(t, IsUnavailable(err))
	assert.Equal(t, `service "tables" unavailable: connection refused`, err.Error())
}

func TestWrappedErrorsSurviveFmtErrorf(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NewNotFoundError("quote", "1"), IsNotFound},
		{"validation", NewValidationError("name", "empty"), IsValidation},
		{"auth", NewAuthError("nope"), IsUnauthenticated},
		{"unavailable", NewUnavailableError("tables", "down"), IsUnavailable},
		{"conflict", NewConflictError("user", "email already registered"), IsConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation failed: %w", tt.err)
			assert.True(t, tt.check(wrapped))
		})
	}
}

func TestProfileUpdateApply(t *testing.T) {
	name := "Ann"
	theme := "dark"

	base := User{ID: "u1", Email: "a@b.com", DisplayName: "Old", Theme: "light", FontSize: "medium"}
	updated := ProfileUpdate{DisplayName: &name, Theme: &theme}.Apply(base)

	assert.Equal(t, "Ann", updated.DisplayName)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "medium", updated.FontSize)
	assert.Equal(t, "Old", base.DisplayName, "Apply must not mutate the original")
}

func TestParseCategory(t *testing.T) {
	got, ok := ParseCategory("wisdom")
	assert.True(t, ok)
	assert.Equal(t, CategoryWisdom, got)

	_, ok = ParseCategory("sports")
	assert.False(t, ok)
}

func TestThemeColorsFallback(t *testing.T) {
	assert.Equal(t, ThemeLight.Colors(), Theme("sepia").Colors())
	assert.NotEqual(t, ThemeLight.Colors(), ThemeDark.Colors())
}

func TestFontScaleFallback(t *testing.T) {
	assert.Equal(t, FontSizeMedium.Scale(), FontSize("enormous").Scale())
	assert.Equal(t, 18, FontSizeSmall.Scale().Quote)
}
