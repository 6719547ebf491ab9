package analyzer

import (
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

// Trigrams reduces a trigram corpus against layout into normalized frequencies.
func (c *Classifier) Trigrams(layout *domain.Layout, corpus *domain.Corpus) (*domain.Stat, error) {
	var counts [domain.MetricCount]uint64
	var total uint64
	for _, gc := range corpus.Grams {
		m, ok := c.Classify(gc.Gram, layout)
		if !ok {
			continue
		}
		counts[m] += gc.Count
		total += gc.Count
	}
	if total == 0 {
		return nil, zerr.With(zerr.With(domain.ErrEmptyCorpus, "corpus", corpus.Name), "layout", layout.Name)
	}

	var stat domain.Stat
	for i, n := range counts {
		stat[i] = float64(n) / float64(total)
	}
	return &stat, nil
}

// FingersUsage reduces a monogram corpus into per-finger frequencies. Characters
// missing from the layout are ignored. The hand aggregates split the same
// total, so each half of the result sums to one.
func FingersUsage(layout *domain.Layout, monograms *domain.Corpus) (*domain.FingerUsage, error) {
	var counts [domain.PhysicalFingers]uint64
	var total uint64
	for _, gc := range monograms.Grams {
		f, ok := layout.Finger(gc.Gram[0])
		if !ok {
			continue
		}
		counts[f] += gc.Count
		total += gc.Count
	}
	if total == 0 {
		return nil, zerr.With(zerr.With(domain.ErrEmptyCorpus, "corpus", monograms.Name), "layout", layout.Name)
	}

	var usage domain.FingerUsage
	var left uint64
	for f, n := range counts {
		usage[f] = float64(n) / float64(total)
		if domain.Finger(f).IsLeft() {
			left += n
		}
	}
	usage[domain.LeftHand] = float64(left) / float64(total)
	usage[domain.RightHand] = float64(total-left) / float64(total)
	return &usage, nil
}
