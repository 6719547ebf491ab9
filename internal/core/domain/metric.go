package domain

import (
	"math"
	"strings"

	"go.trai.ch/zerr"
)

// Metric is an ergonomic category that a typed trigram falls into.
type Metric uint8

const (
	// MetricSameFingerBigram marks two consecutive keys pressed by one finger.
	MetricSameFingerBigram Metric = iota
	// MetricSameFingerTrigram marks three keys pressed by one finger, or a
	// trigram that repeats a character.
	MetricSameFingerTrigram
	// MetricSameFingerSkip marks first and last keys on one finger around a thumb.
	MetricSameFingerSkip
	// MetricAlternation marks hands alternating left-right-left or right-left-right.
	MetricAlternation
	// MetricAlternationSkip is an alternation whose outer keys share a finger.
	MetricAlternationSkip
	// MetricRedirect is a one-hand direction reversal.
	MetricRedirect
	// MetricBadRedirect is a redirect turning around on a pinky or index finger.
	MetricBadRedirect
	// MetricRedirectSkip is a one-hand reversal whose outer keys share a finger.
	MetricRedirectSkip
	// MetricBadRedirectSkip is a redirect skip turning around on a pinky or index finger.
	MetricBadRedirectSkip
	// MetricInwardOneHand is a three-key one-hand progression toward the centre.
	MetricInwardOneHand
	// MetricOutwardOneHand is a three-key one-hand progression toward the edge.
	MetricOutwardOneHand
	// MetricInwardRoll is a two-key roll toward the centre with the other hand idle.
	MetricInwardRoll
	// MetricOutwardRoll is a two-key roll toward the edge with the other hand idle.
	MetricOutwardRoll
	// MetricUnknown marks trigrams with a character missing from the layout.
	MetricUnknown
)

// MetricCount is the number of metric categories.
const MetricCount = int(MetricUnknown) + 1

var metricNames = [MetricCount]string{
	"same-finger-bigram",
	"same-finger-trigram",
	"same-finger-skip",
	"alternation",
	"alternation-skip",
	"redirect",
	"bad-redirect",
	"redirect-skip",
	"bad-redirect-skip",
	"inward-one-hand",
	"outward-one-hand",
	"inward-roll",
	"outward-roll",
	"unknown",
}

// String returns the kebab-case name of the metric.
func (m Metric) String() string {
	if int(m) < MetricCount {
		return metricNames[m]
	}
	return "invalid"
}

// Metrics returns every metric in declaration order.
func Metrics() []Metric {
	out := make([]Metric, MetricCount)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// ParseMetric resolves a metric by its kebab-case name.
func ParseMetric(name string) (Metric, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricNames {
		if n == lower {
			return Metric(i), nil
		}
	}
	return 0, zerr.With(ErrUnknownMetric, "metric", name)
}

// Stat is a dense frequency per metric. Over a non-empty corpus the entries sum to 1.
type Stat [MetricCount]float64

// Get returns the frequency of m.
func (s *Stat) Get(m Metric) float64 {
	return s[m]
}

// Sum returns the total of all frequencies.
func (s *Stat) Sum() float64 {
	var total float64
	for _, f := range s {
		total += f
	}
	return total
}

// ApproxEqual reports whether every category of s and other differ by at most tol.
func (s *Stat) ApproxEqual(other *Stat, tol float64) bool {
	for i := range s {
		if math.Abs(s[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

// FingerUsage is a dense frequency per finger bucket. The ten physical fingers
// sum to 1, and so do the two hand aggregates.
type FingerUsage [FingerBuckets]float64

// Get returns the frequency for finger f.
func (u *FingerUsage) Get(f Finger) float64 {
	return u[f]
}
