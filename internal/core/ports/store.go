package ports

import "go.trai.ch/cmini/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// LayoutStore persists the layout registry.
type LayoutStore interface {
	// LoadLayouts returns every persisted layout in insertion order.
	// A missing store yields no layouts and no error.
	LoadLayouts() ([]*domain.Layout, error)

	// SaveLayouts replaces the persisted layouts with the given ordered slice.
	SaveLayouts(layouts []*domain.Layout) error
}

// StatStore persists the stat cache.
type StatStore interface {
	// LoadStats returns every persisted cache entry keyed by lowercase layout name.
	LoadStats() (map[string]*domain.CachedEntry, error)

	// SaveStats replaces the persisted cache in a single write.
	SaveStats(entries map[string]*domain.CachedEntry) error
}

// CommunityStore persists likes, authors, links and corpus preferences.
type CommunityStore interface {
	LoadCommunity() (*domain.Community, error)
	SaveCommunity(c *domain.Community) error
}

// SettingsStore persists process-wide switches.
type SettingsStore interface {
	// LoadSettings returns the persisted settings, or zero settings when none exist.
	LoadSettings() (*domain.Settings, error)
	SaveSettings(s *domain.Settings) error
}
