// Package statcache memoizes layout statistics per corpus, keyed by the
// checksum of each layout's keys.
package statcache

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/cmini/internal/core/ports"
	"go.trai.ch/cmini/internal/engine/analyzer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of one layout during a resync.
type Status string

const (
	// StatusPending indicates the layout is waiting for a worker.
	StatusPending Status = "Pending"
	// StatusRunning indicates the layout's stats are being computed.
	StatusRunning Status = "Running"
	// StatusCompleted indicates a fresh entry was committed.
	StatusCompleted Status = "Completed"
	// StatusFailed indicates at least one corpus could not be computed.
	StatusFailed Status = "Failed"
	// StatusCached indicates the cached checksum matched and nothing was computed.
	StatusCached Status = "Cached"
)

// Report summarizes a resync.
type Report struct {
	// Recomputed counts layouts whose entry was replaced.
	Recomputed int
	// Skipped counts layouts whose cached checksum was current.
	Skipped int
	// Failed counts (layout, corpus) pairs that produced no stat.
	Failed int
	// Pruned counts entries dropped because their layout no longer exists.
	Pruned int
	// Statuses holds the final status of every layout, by lowercase name.
	Statuses map[string]Status
}

// Cache is the content-addressed stat cache. Entries are immutable once
// published; every update swaps in a new entry.
type Cache struct {
	classifier *analyzer.Classifier
	corpora    ports.CorpusLoader
	store      ports.StatStore
	logger     ports.Logger
	telemetry  ports.Telemetry
	workers    int

	mu      sync.RWMutex
	entries map[string]*domain.CachedEntry
}

// New creates an empty Cache. A workers value below one uses one worker per CPU.
func New(
	classifier *analyzer.Classifier,
	corpora ports.CorpusLoader,
	store ports.StatStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
	workers int,
) *Cache {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Cache{
		classifier: classifier,
		corpora:    corpora,
		store:      store,
		logger:     logger,
		telemetry:  telemetry,
		workers:    workers,
		entries:    make(map[string]*domain.CachedEntry),
	}
}

// Load replaces the in-memory entries with the persisted cache.
func (c *Cache) Load() error {
	entries, err := c.store.LoadStats()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = make(map[string]*domain.CachedEntry)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	return nil
}

// Save persists every entry in one write.
func (c *Cache) Save() error {
	return c.store.SaveStats(c.Snapshot())
}

// Snapshot returns the current entries. The entries themselves are shared.
func (c *Cache) Snapshot() map[string]*domain.CachedEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.entries)
}

// Get returns the cached stat of a layout on a corpus. Both names are
// case-insensitive; empty names, unknown layouts and uncomputed corpora
// report false.
func (c *Cache) Get(name, corpus string) (*domain.Stat, bool) {
	name, corpus = strings.ToLower(name), strings.ToLower(corpus)
	if name == "" || corpus == "" {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	stat, ok := entry.Stats[corpus]
	return stat, ok
}

// Checksum returns the checksum the layout's entry was computed for.
func (c *Cache) Checksum(name string) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return entry.Checksum, true
}

// Fetch returns the stat of layout on corpus, computing and committing it
// when the cached entry is missing, lacks the corpus or was computed for
// other keys.
func (c *Cache) Fetch(layout *domain.Layout, corpus string) (*domain.Stat, error) {
	name, corpus := strings.ToLower(layout.Name), strings.ToLower(corpus)
	if corpus == "" {
		return nil, zerr.With(domain.ErrCorpusNotFound, "corpus", corpus)
	}

	c.mu.RLock()
	entry := c.entries[name]
	c.mu.RUnlock()
	if entry != nil && entry.Checksum == layout.Checksum {
		if stat, ok := entry.Stats[corpus]; ok {
			return stat, nil
		}
	}

	stat, err := c.compute(layout, corpus)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	current := c.entries[name]
	if current == nil || current.Checksum != layout.Checksum {
		current = domain.NewCachedEntry(layout.Checksum)
	}
	c.entries[name] = current.With(corpus, stat)
	return stat, nil
}

// Rekey moves the entry of a renamed layout. Keys are unchanged by a rename,
// so the entry stays valid.
func (c *Cache) Rekey(oldName, newName string) {
	oldName, newName = strings.ToLower(oldName), strings.ToLower(newName)
	if oldName == newName {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[oldName]; ok {
		delete(c.entries, oldName)
		c.entries[newName] = entry
	}
}

func (c *Cache) compute(layout *domain.Layout, corpus string) (*domain.Stat, error) {
	grams, err := c.corpora.Load(corpus, domain.Trigram)
	if err != nil {
		return nil, err
	}
	return c.classifier.Trigrams(layout, grams)
}

// Resync brings the entry of every layout up to date with its checksum,
// computing stale layouts on the worker pool, prunes entries of layouts that
// no longer exist, and persists the cache once. A started resync always runs
// to completion; per-pair failures are reported, not fatal.
func (c *Cache) Resync(ctx context.Context, layouts []*domain.Layout) (*Report, error) {
	corpora, err := c.corpora.List()
	if err != nil {
		return nil, err
	}

	run := &resyncRun{
		cache:   c,
		corpora: corpora,
		report:  &Report{Statuses: make(map[string]Status, len(layouts))},
	}
	for _, l := range layouts {
		run.report.Statuses[strings.ToLower(l.Name)] = StatusPending
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for _, l := range layouts {
		g.Go(func() error {
			run.layout(ctx, l)
			return nil
		})
	}
	_ = g.Wait()

	run.report.Pruned = c.prune(layouts)

	c.logger.Info(fmt.Sprintf("resync finished: %d recomputed, %d skipped, %d failed, %d pruned",
		run.report.Recomputed, run.report.Skipped, run.report.Failed, run.report.Pruned))

	if err := c.Save(); err != nil {
		run.errs = append(run.errs, err)
	}
	return run.report, errors.Join(run.errs...)
}

func (c *Cache) prune(layouts []*domain.Layout) int {
	live := make(map[string]struct{}, len(layouts))
	for _, l := range layouts {
		live[strings.ToLower(l.Name)] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	pruned := 0
	for name := range c.entries {
		if _, ok := live[name]; !ok {
			delete(c.entries, name)
			pruned++
		}
	}
	return pruned
}

// unverified is the checksum of an entry committed with missing corpora that
// are worth retrying.
const unverified uint64 = 0

// retryable reports whether any failure may succeed on a later attempt.
// Degenerate corpora stay degenerate until the corpus itself changes.
func retryable(failures []error) bool {
	for _, err := range failures {
		if !errors.Is(err, domain.ErrDegenerate) {
			return true
		}
	}
	return false
}

type resyncRun struct {
	cache   *Cache
	corpora []string

	mu     sync.Mutex
	report *Report
	errs   []error
}

func (r *resyncRun) setStatus(name string, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Statuses[name] = status
}

func (r *resyncRun) layout(ctx context.Context, l *domain.Layout) {
	name := strings.ToLower(l.Name)
	_, vertex := r.cache.telemetry.Record(ctx, l.Name)

	if sum, ok := r.cache.Checksum(name); ok && sum == l.Checksum {
		vertex.Cached()
		vertex.Complete(nil)
		r.mu.Lock()
		r.report.Skipped++
		r.report.Statuses[name] = StatusCached
		r.mu.Unlock()
		return
	}

	r.setStatus(name, StatusRunning)
	entry := domain.NewCachedEntry(l.Checksum)
	var failures []error
	for _, corpus := range r.corpora {
		stat, err := r.cache.compute(l, corpus)
		if err != nil {
			failures = append(failures, err)
			if errors.Is(err, domain.ErrDegenerate) {
				r.cache.logger.Warn(fmt.Sprintf("skipping %s on %s: %s", l.Name, corpus, domain.ErrEmptyCorpus.Error()))
			}
			continue
		}
		// entry is private until committed below.
		entry.Stats[corpus] = stat
	}

	if retryable(failures) {
		// A zero checksum never matches, so the next resync computes the layout again.
		entry.Checksum = unverified
	}
	r.cache.mu.Lock()
	r.cache.entries[name] = entry
	r.cache.mu.Unlock()

	vertex.Log(fmt.Sprintf("computed %d of %d corpora", len(entry.Stats), len(r.corpora)))
	failure := errors.Join(failures...)
	vertex.Complete(failure)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Recomputed++
	r.report.Failed += len(failures)
	if failure != nil {
		r.report.Statuses[name] = StatusFailed
		for _, err := range failures {
			if !errors.Is(err, domain.ErrDegenerate) {
				r.errs = append(r.errs, zerr.With(zerr.Wrap(err, "failed to compute stats"), "layout", l.Name))
			}
		}
		return
	}
	r.report.Statuses[name] = StatusCompleted
	r.cache.logger.Info(fmt.Sprintf("recomputed stats for %s", l.Name))
}
