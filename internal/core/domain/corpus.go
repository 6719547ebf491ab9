package domain

import "go.trai.ch/zerr"

// WordBoundary is the character corpora use to mark the gap between words.
const WordBoundary = ' '

// DefaultCorpus is the corpus used when a user has not chosen one.
const DefaultCorpus = "mt-quotes"

// GramSize is the number of characters in a gram.
type GramSize int

const (
	// Monogram is a single character.
	Monogram GramSize = 1
	// Bigram is a pair of characters.
	Bigram GramSize = 2
	// Trigram is a sequence of three characters.
	Trigram GramSize = 3
)

// FileName returns the base name of the corpus file holding grams of this size.
func (n GramSize) FileName() string {
	switch n {
	case Monogram:
		return "monograms.json"
	case Bigram:
		return "bigrams.json"
	default:
		return "trigrams.json"
	}
}

// Gram is up to three characters. Unused trailing slots are zero.
type Gram [3]rune

// ParseGram converts a corpus key into a Gram of the given size.
func ParseGram(key string, size GramSize) (Gram, error) {
	var g Gram
	i := 0
	for _, r := range key {
		if i >= int(size) {
			return Gram{}, zerr.With(ErrGramMalformed, "gram", key)
		}
		g[i] = r
		i++
	}
	if i != int(size) {
		return Gram{}, zerr.With(ErrGramMalformed, "gram", key)
	}
	return g, nil
}

// GramCount pairs a gram with its occurrence count.
type GramCount struct {
	Gram  Gram
	Count uint64
}

// Corpus is a frequency table of fixed-size grams.
type Corpus struct {
	Name  string
	Size  GramSize
	Grams []GramCount
}

// Total returns the sum of all counts.
func (c *Corpus) Total() uint64 {
	var total uint64
	for _, g := range c.Grams {
		total += g.Count
	}
	return total
}
