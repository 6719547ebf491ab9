// Package corpus loads gram frequency tables from the corpora directory.
package corpus

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.CorpusLoader. Each file is decoded successfully at
// most once per process; later calls share the table. Failed reads are not
// kept, so a corpus added later is picked up by the next call.
type Loader struct {
	dir    string
	mu     sync.Mutex
	loaded map[string]*entry
}

type entry struct {
	mu     sync.Mutex
	corpus *domain.Corpus
}

// NewLoader creates a Loader rooted at dir, which holds one directory per corpus.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:    dir,
		loaded: make(map[string]*entry),
	}
}

// Load returns the gram table of the given size for corpus.
func (l *Loader) Load(corpus string, size domain.GramSize) (*domain.Corpus, error) {
	name := strings.ToLower(corpus)
	if !validName(name) {
		return nil, zerr.With(domain.ErrCorpusNotFound, "corpus", corpus)
	}
	path := domain.CorpusFilePath(l.dir, name, size)

	l.mu.Lock()
	e, ok := l.loaded[path]
	if !ok {
		e = &entry{}
		l.loaded[path] = e
	}
	l.mu.Unlock()

	// Decoding happens outside the map lock so different corpora load in parallel.
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.corpus != nil {
		return e.corpus, nil
	}
	c, err := read(path, name, size)
	if err != nil {
		return nil, err
	}
	e.corpus = c
	return c, nil
}

// List returns every corpus directory name, sorted. A missing corpora
// directory yields an empty list.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCorpusReadFailed.Error()), "dir", l.dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// Exists reports whether corpus has a directory under the corpora root.
func (l *Loader) Exists(corpus string) bool {
	name := strings.ToLower(corpus)
	if !validName(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(l.dir, name))
	return err == nil && info.IsDir()
}

func read(path, name string, size domain.GramSize) (*domain.Corpus, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from a validated corpus name
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrCorpusNotFound, "corpus", name)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCorpusReadFailed.Error()), "path", path)
	}

	var raw map[string]uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}

	c := &domain.Corpus{
		Name:  name,
		Size:  size,
		Grams: make([]domain.GramCount, 0, len(raw)),
	}
	for key, count := range raw {
		g, err := domain.ParseGram(key, size)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		c.Grams = append(c.Grams, domain.GramCount{Gram: g, Count: count})
	}
	return c, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
