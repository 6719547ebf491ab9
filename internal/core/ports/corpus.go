package ports

import "go.trai.ch/cmini/internal/core/domain"

// CorpusLoader provides read-only gram tables.
//
//go:generate mockgen -source=corpus.go -destination=mocks/mock_corpus.go -package=mocks
type CorpusLoader interface {
	// Load returns the gram table of the given size for a corpus. Tables are
	// memoized, so repeated calls share one immutable value.
	Load(corpus string, size domain.GramSize) (*domain.Corpus, error)

	// List returns the names of every available corpus, sorted.
	List() ([]string, error)
}
