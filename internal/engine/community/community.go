// Package community tracks the bookkeeping around layouts: likes, author
// names, external links and per-user corpus preferences.
package community

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/xrash/smetrics"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	boostThreshold = 0.7
	prefixSize     = 4
)

// Community holds one independently locked table per concern.
type Community struct {
	defaultCorpus string

	likesMu sync.RWMutex
	likes   map[string][]uint64

	authorsMu sync.RWMutex
	authors   map[uint64][]string

	linksMu sync.RWMutex
	links   map[string]string

	prefsMu sync.RWMutex
	prefs   map[uint64]string
}

// New creates an empty Community. Users without a preference get defaultCorpus.
func New(defaultCorpus string) *Community {
	return &Community{
		defaultCorpus: strings.ToLower(defaultCorpus),
		likes:         make(map[string][]uint64),
		authors:       make(map[uint64][]string),
		links:         make(map[string]string),
		prefs:         make(map[uint64]string),
	}
}

// Load replaces every table with a copy of d.
func (c *Community) Load(d *domain.Community) {
	c.likesMu.Lock()
	c.likes = cloneLists(d.Likes)
	c.likesMu.Unlock()

	c.authorsMu.Lock()
	c.authors = cloneLists(d.Authors)
	c.authorsMu.Unlock()

	c.linksMu.Lock()
	c.links = maps.Clone(d.Links)
	if c.links == nil {
		c.links = make(map[string]string)
	}
	c.linksMu.Unlock()

	c.prefsMu.Lock()
	c.prefs = maps.Clone(d.CorpusPrefs)
	if c.prefs == nil {
		c.prefs = make(map[uint64]string)
	}
	c.prefsMu.Unlock()
}

// Snapshot returns a deep copy of every table for persistence.
func (c *Community) Snapshot() *domain.Community {
	d := &domain.Community{}

	c.likesMu.RLock()
	d.Likes = cloneLists(c.likes)
	c.likesMu.RUnlock()

	c.authorsMu.RLock()
	d.Authors = cloneLists(c.authors)
	c.authorsMu.RUnlock()

	c.linksMu.RLock()
	d.Links = maps.Clone(c.links)
	c.linksMu.RUnlock()

	c.prefsMu.RLock()
	d.CorpusPrefs = maps.Clone(c.prefs)
	c.prefsMu.RUnlock()
	return d
}

func cloneLists[K comparable, V any](m map[K][]V) map[K][]V {
	out := make(map[K][]V, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// Like records that user likes layout and returns the new like count.
func (c *Community) Like(layout string, user uint64) (int, error) {
	if layout == domain.ReservedLayout {
		return 0, zerr.With(domain.ErrReservedLayout, "layout", layout)
	}

	c.likesMu.Lock()
	defer c.likesMu.Unlock()
	if slices.Contains(c.likes[layout], user) {
		return 0, zerr.With(domain.ErrAlreadyLiked, "layout", layout)
	}
	c.likes[layout] = append(c.likes[layout], user)
	return len(c.likes[layout]), nil
}

// Unlike withdraws user's like of layout and returns the new like count.
func (c *Community) Unlike(layout string, user uint64) (int, error) {
	c.likesMu.Lock()
	defer c.likesMu.Unlock()

	users := c.likes[layout]
	i := slices.Index(users, user)
	if i < 0 {
		return 0, zerr.With(domain.ErrNotLiked, "layout", layout)
	}
	c.likes[layout] = slices.Delete(users, i, i+1)
	return len(c.likes[layout]), nil
}

// LikeCount returns how many users like layout.
func (c *Community) LikeCount(layout string) int {
	c.likesMu.RLock()
	defer c.likesMu.RUnlock()
	return len(c.likes[layout])
}

// Liked returns the layouts user likes, sorted by name.
func (c *Community) Liked(user uint64) []string {
	c.likesMu.RLock()
	defer c.likesMu.RUnlock()

	var names []string
	for layout, users := range c.likes {
		if slices.Contains(users, user) {
			names = append(names, layout)
		}
	}
	slices.Sort(names)
	return names
}

// RenameLayout moves the likes and link of a renamed layout.
func (c *Community) RenameLayout(oldName, newName string) {
	c.likesMu.Lock()
	if users, ok := c.likes[oldName]; ok {
		delete(c.likes, oldName)
		c.likes[newName] = users
	}
	c.likesMu.Unlock()

	c.linksMu.Lock()
	if link, ok := c.links[oldName]; ok {
		delete(c.links, oldName)
		c.links[newName] = link
	}
	c.linksMu.Unlock()
}

// ForgetLayout drops the likes and link of a removed layout.
func (c *Community) ForgetLayout(name string) {
	c.likesMu.Lock()
	delete(c.likes, name)
	c.likesMu.Unlock()

	c.linksMu.Lock()
	delete(c.links, name)
	c.linksMu.Unlock()
}

// SeeAuthor records a display name for id. It reports whether the name was new.
func (c *Community) SeeAuthor(id uint64, name string) bool {
	if name == "" {
		return false
	}
	c.authorsMu.Lock()
	defer c.authorsMu.Unlock()

	if slices.Contains(c.authors[id], name) {
		return false
	}
	c.authors[id] = append(c.authors[id], name)
	return true
}

// HasAuthor reports whether any name is recorded for id.
func (c *Community) HasAuthor(id uint64) bool {
	c.authorsMu.RLock()
	defer c.authorsMu.RUnlock()
	_, ok := c.authors[id]
	return ok
}

// AuthorName returns the first name recorded for id, or domain.UnknownAuthor.
func (c *Community) AuthorName(id uint64) string {
	c.authorsMu.RLock()
	defer c.authorsMu.RUnlock()

	if names := c.authors[id]; len(names) > 0 {
		return names[0]
	}
	return domain.UnknownAuthor
}

// FindAuthor returns the id whose recorded names best match query. Ties go to
// the lowest id.
func (c *Community) FindAuthor(query string) (uint64, error) {
	c.authorsMu.RLock()
	defer c.authorsMu.RUnlock()

	ids := slices.Sorted(maps.Keys(c.authors))
	var best uint64
	bestScore := 0.0
	for _, id := range ids {
		for _, name := range c.authors[id] {
			if score := smetrics.JaroWinkler(query, name, boostThreshold, prefixSize); score > bestScore {
				best, bestScore = id, score
			}
		}
	}
	if bestScore == 0 {
		return 0, zerr.With(domain.ErrAuthorNotFound, "author", query)
	}
	return best, nil
}

// Link returns the external link of layout.
func (c *Community) Link(layout string) (string, bool) {
	c.linksMu.RLock()
	defer c.linksMu.RUnlock()
	link, ok := c.links[layout]
	return link, ok
}

// SetLink sets the external link of layout. An empty url removes it.
func (c *Community) SetLink(layout, url string) {
	c.linksMu.Lock()
	defer c.linksMu.Unlock()
	if url == "" {
		delete(c.links, layout)
		return
	}
	c.links[layout] = url
}

// Corpus returns the preferred corpus of user.
func (c *Community) Corpus(user uint64) string {
	c.prefsMu.RLock()
	defer c.prefsMu.RUnlock()
	if corpus, ok := c.prefs[user]; ok {
		return corpus
	}
	return c.defaultCorpus
}

// SetCorpus stores the preferred corpus of user, lowercased.
func (c *Community) SetCorpus(user uint64, corpus string) {
	c.prefsMu.Lock()
	defer c.prefsMu.Unlock()
	c.prefs[user] = strings.ToLower(corpus)
}
