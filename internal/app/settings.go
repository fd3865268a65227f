package app

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/platform/storage"
)

// settingsStorageKey is where preferences persist between runs.
const settingsStorageKey = "settings"

// SettingsStore holds user preferences. Every setter persists the whole
// settings object immediately; persistence failure is logged and the
// in-memory value kept, so preferences survive the session either way.
type SettingsStore struct {
	store  *storage.FileStore
	logger *slog.Logger

	mu       sync.RWMutex
	settings domain.Settings
}

// SettingsStoreConfig contains dependencies for the settings store.
type SettingsStoreConfig struct {
	Store  *storage.FileStore
	Logger *slog.Logger
}

// NewSettingsStore creates a settings store, loading persisted
// preferences or the defaults when nothing (or garbage) is stored.
// Panics if Store is nil.
func NewSettingsStore(cfg SettingsStoreConfig) *SettingsStore {
	if cfg.Store == nil {
		panic("SettingsStore: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "app.SettingsStore"))

	settings := domain.DefaultSettings()

	var stored domain.Settings
	switch err := cfg.Store.Get(settingsStorageKey, &stored); {
	case err == nil:
		settings = stored
	case !errors.Is(err, storage.ErrKeyNotFound):
		logger.Warn("stored settings unreadable, using defaults",
			slog.Any("error", err),
		)
	}

	return &SettingsStore{
		store:    cfg.Store,
		logger:   logger,
		settings: settings,
	}
}

// Settings returns the current preferences.
func (s *SettingsStore) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// SetTheme changes the theme and persists.
func (s *SettingsStore) SetTheme(theme domain.Theme) {
	s.update(func(settings *domain.Settings) {
		settings.Theme = theme
	})
}

// SetFontSize changes the font size and persists.
func (s *SettingsStore) SetFontSize(size domain.FontSize) {
	s.update(func(settings *domain.Settings) {
		settings.FontSize = size
	})
}

// SetNotificationsEnabled toggles daily notifications and persists.
func (s *SettingsStore) SetNotificationsEnabled(enabled bool) {
	s.update(func(settings *domain.Settings) {
		settings.NotificationsEnabled = enabled
	})
}

// SetNotificationTime changes the daily alert time ("HH:MM") and
// persists.
func (s *SettingsStore) SetNotificationTime(value string) {
	s.update(func(settings *domain.Settings) {
		settings.NotificationTime = value
	})
}

// update applies the mutation under the lock and persists the result.
func (s *SettingsStore) update(mutate func(*domain.Settings)) {
	s.mu.Lock()
	mutate(&s.settings)
	settings := s.settings
	s.mu.Unlock()

	if err := s.store.Set(settingsStorageKey, settings); err != nil {
		s.logger.Warn("settings persistence failed",
			slog.Any("error", err),
		)
	}
}
