package prefs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trizenhq/trizen/internal/kvstore"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

// ThemeStore is the one-value preference repository for dark mode. It is
// persisted under its own key, independent of the task collection.
type ThemeStore struct {
	store  kvstore.Store
	logger *slog.Logger

	mu     sync.Mutex
	dark   bool
	loaded bool
}

func NewThemeStore(store kvstore.Store, logger *slog.Logger) *ThemeStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ThemeStore{store: store, logger: logger}
}

// Load reads the persisted preference once; an absent key, unreadable store,
// or unknown literal all default to dark.
func (s *ThemeStore) Load(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Toggle flips the in-memory value first and then persists it. A failed write
// is logged and the flipped value stands; the preference will simply revert
// on next startup.
func (s *ThemeStore) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
	s.dark = !s.dark
	value := themeLight
	if s.dark {
		value = themeDark
	}
	if err := s.store.Set(ctx, kvstore.KeyTheme, value); err != nil {
		s.logger.Error("save theme preference", "value", value, "error", err)
	}
	return s.dark
}

func (s *ThemeStore) loadLocked(ctx context.Context) bool {
	if s.loaded {
		return s.dark
	}
	s.dark = true
	s.loaded = true
	raw, ok, err := s.store.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		s.logger.Warn("load theme preference", "error", err)
		return s.dark
	}
	if ok {
		s.dark = raw == themeDark
	}
	return s.dark
}
