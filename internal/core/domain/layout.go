package domain

import (
	"maps"
	"strings"

	"go.trai.ch/zerr"
)

// BoardShape is the physical arrangement a layout was submitted for.
type BoardShape string

const (
	// BoardOrtho is a grid with no row offsets.
	BoardOrtho BoardShape = "ortho"
	// BoardAngle is a row-staggered board using the angle mod on the bottom row.
	BoardAngle BoardShape = "angle"
	// BoardStagger is a classic row-staggered board.
	BoardStagger BoardShape = "stagger"
	// BoardMini is a compact board with an optional thumb row.
	BoardMini BoardShape = "mini"
)

// MaxRows returns the number of rows the board shape supports.
func (b BoardShape) MaxRows() int {
	if b == BoardMini {
		return 4
	}
	return 3
}

// ParseBoardShape resolves a persisted board shape name.
func ParseBoardShape(name string) (BoardShape, error) {
	switch shape := BoardShape(strings.ToLower(name)); shape {
	case BoardOrtho, BoardAngle, BoardStagger, BoardMini:
		return shape, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrCorrupt, "unknown board shape"), "board", name)
	}
}

// Layout is a named key assignment owned by a single user.
//
// Layouts handed out by the registry are shared and must be treated as
// read-only. Checksum is derived from the canonical packed form of Keys.
type Layout struct {
	Name     string
	Owner    uint64
	Board    BoardShape
	Keys     map[rune]Position
	Checksum uint64
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := *l
	c.Keys = maps.Clone(l.Keys)
	return &c
}

// Finger returns the finger that types r, if r is assigned.
func (l *Layout) Finger(r rune) (Finger, bool) {
	pos, ok := l.Keys[r]
	return pos.Finger, ok
}

// CachedEntry holds the stats computed for one layout, keyed by corpus name.
// Entries are immutable once published; updates build a new entry.
type CachedEntry struct {
	Checksum uint64
	Stats    map[string]*Stat
}

// NewCachedEntry creates an empty entry for the given checksum.
func NewCachedEntry(checksum uint64) *CachedEntry {
	return &CachedEntry{
		Checksum: checksum,
		Stats:    make(map[string]*Stat),
	}
}

// With returns a copy of the entry that additionally holds stat for corpus.
func (e *CachedEntry) With(corpus string, stat *Stat) *CachedEntry {
	next := &CachedEntry{
		Checksum: e.Checksum,
		Stats:    make(map[string]*Stat, len(e.Stats)+1),
	}
	maps.Copy(next.Stats, e.Stats)
	next.Stats[corpus] = stat
	return next
}
