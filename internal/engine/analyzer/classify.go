package analyzer

import "go.trai.ch/cmini/internal/core/domain"

// RepeatMetric is the bucket for trigrams that repeat a character. Which pair
// repeated is not recorded.
const RepeatMetric = domain.MetricSameFingerTrigram

// Classifier buckets trigrams against a finger table.
type Classifier struct {
	table *Table
}

// NewClassifier creates a Classifier backed by table.
func NewClassifier(table *Table) *Classifier {
	return &Classifier{table: table}
}

// Classify returns the metric of a trigram typed on layout. ok is false when
// the gram contains a word boundary; such grams must be skipped, not counted.
func (c *Classifier) Classify(gram domain.Gram, layout *domain.Layout) (m domain.Metric, ok bool) {
	c0, c1, c2 := gram[0], gram[1], gram[2]
	if c0 == domain.WordBoundary || c1 == domain.WordBoundary || c2 == domain.WordBoundary {
		return 0, false
	}
	if c0 == c1 || c1 == c2 || c0 == c2 {
		return RepeatMetric, true
	}

	f0, ok0 := layout.Finger(c0)
	f1, ok1 := layout.Finger(c1)
	f2, ok2 := layout.Finger(c2)
	if !ok0 || !ok1 || !ok2 {
		return domain.MetricUnknown, true
	}
	return c.table.Lookup(f0, f1, f2), true
}
