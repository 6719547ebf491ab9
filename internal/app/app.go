// Package app implements the application layer for cmini.
package app

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"time"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/cmini/internal/core/ports"
	"go.trai.ch/cmini/internal/engine/board"
	"go.trai.ch/cmini/internal/engine/community"
	"go.trai.ch/cmini/internal/engine/registry"
	"go.trai.ch/cmini/internal/engine/statcache"
	"go.trai.ch/zerr"
)

// Caller identifies who issued an operation.
type Caller struct {
	ID   uint64
	Name string
}

// Stores groups the persistence ports the App flushes to.
type Stores struct {
	Layouts   ports.LayoutStore
	Community ports.CommunityStore
	Settings  ports.SettingsStore
}

// App owns every shared table and exposes the operations of the command layer.
type App struct {
	registry   *registry.Registry
	cache      *statcache.Cache
	community  *community.Community
	parser     *board.Parser
	corpora    ports.CorpusLoader
	stores     Stores
	logger     ports.Logger
	privileged []uint64

	maintenance atomic.Bool
}

// New creates a new App instance.
func New(
	reg *registry.Registry,
	cache *statcache.Cache,
	people *community.Community,
	parser *board.Parser,
	corpora ports.CorpusLoader,
	stores Stores,
	logger ports.Logger,
	privileged []uint64,
) *App {
	return &App{
		registry:   reg,
		cache:      cache,
		community:  people,
		parser:     parser,
		corpora:    corpora,
		stores:     stores,
		logger:     logger,
		privileged: privileged,
	}
}

// Load fills the registry, the stat cache and the community tables from disk.
// Corrupt data is returned as is; the caller must refuse to serve.
func (a *App) Load() error {
	layouts, err := a.stores.Layouts.LoadLayouts()
	if err != nil {
		return zerr.Wrap(err, "failed to load layouts")
	}
	if err := a.registry.Load(layouts); err != nil {
		return zerr.Wrap(err, "failed to load layouts")
	}

	if err := a.cache.Load(); err != nil {
		return zerr.Wrap(err, "failed to load stat cache")
	}

	people, err := a.stores.Community.LoadCommunity()
	if err != nil {
		return zerr.Wrap(err, "failed to load community data")
	}
	a.community.Load(people)

	settings, err := a.stores.Settings.LoadSettings()
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	a.maintenance.Store(settings.Maintenance)
	return nil
}

// Flush persists layouts, community tables, settings and the stat cache, one
// write each.
// Every write is attempted; failures are joined.
func (a *App) Flush() error {
	var errs []error
	if err := a.stores.Layouts.SaveLayouts(a.registry.Snapshot()); err != nil {
		errs = append(errs, err)
	}
	if err := a.stores.Community.SaveCommunity(a.community.Snapshot()); err != nil {
		errs = append(errs, err)
	}
	if err := a.stores.Settings.SaveSettings(&domain.Settings{Maintenance: a.maintenance.Load()}); err != nil {
		errs = append(errs, err)
	}
	if err := a.cache.Save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Resync brings the stat cache up to date with every registered layout.
func (a *App) Resync(ctx context.Context) (*statcache.Report, error) {
	return a.cache.Resync(ctx, a.registry.Snapshot())
}

// Serve resyncs and flushes every interval until ctx is done, then flushes
// one last time.
func (a *App) Serve(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return a.Flush()
		case <-ticker.C:
			if _, err := a.Resync(ctx); err != nil {
				a.logger.Error(err)
			}
			if err := a.Flush(); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// Maintenance reports whether mutations are currently refused.
func (a *App) Maintenance() bool {
	return a.maintenance.Load()
}

// SetMaintenance toggles maintenance mode. Only privileged callers may do so.
func (a *App) SetMaintenance(caller Caller, on bool) error {
	if !a.IsPrivileged(caller.ID) {
		return domain.ErrNotPrivileged
	}
	a.maintenance.Store(on)
	return nil
}

// IsPrivileged reports whether id may override ownership checks.
func (a *App) IsPrivileged(id uint64) bool {
	return slices.Contains(a.privileged, id)
}

// begin records the caller's display name and refuses mutations during
// maintenance.
func (a *App) begin(caller Caller) error {
	if a.maintenance.Load() {
		return domain.ErrMaintenance
	}
	a.see(caller)
	return nil
}

func (a *App) see(caller Caller) {
	if caller.Name != "" {
		a.community.SeeAuthor(caller.ID, caller.Name)
	}
}

func (a *App) sudo(caller Caller, requested bool) (bool, error) {
	if !requested {
		return false, nil
	}
	if !a.IsPrivileged(caller.ID) {
		return false, domain.ErrNotPrivileged
	}
	return true, nil
}
