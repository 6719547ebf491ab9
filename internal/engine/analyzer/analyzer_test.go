package analyzer_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmini/internal/codec"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/cmini/internal/engine/analyzer"
	"go.trai.ch/cmini/internal/engine/board"
)

func qwerty(t *testing.T) *domain.Layout {
	t.Helper()
	l, err := board.NewParser(0).Build("qwerty", 1, "qwertyuiop\nasdfghjkl;\nzxcvbnm,./")
	require.NoError(t, err)
	return l
}

func trigramCorpus(t *testing.T, counts map[string]uint64) *domain.Corpus {
	t.Helper()
	c := &domain.Corpus{Name: "test", Size: domain.Trigram}
	for key, n := range counts {
		g, err := domain.ParseGram(key, domain.Trigram)
		require.NoError(t, err)
		c.Grams = append(c.Grams, domain.GramCount{Gram: g, Count: n})
	}
	return c
}

func TestDefaultTable(t *testing.T) {
	table, err := analyzer.DefaultTable()
	require.NoError(t, err)

	for a := range domain.PhysicalFingers {
		for b := range domain.PhysicalFingers {
			for c := range domain.PhysicalFingers {
				m := table.Lookup(domain.Finger(a), domain.Finger(b), domain.Finger(c))
				assert.NotEqual(t, domain.MetricUnknown, m, "%d-%d-%d", a, b, c)
			}
		}
	}

	tests := []struct {
		combo    [3]domain.Finger
		expected domain.Metric
	}{
		{[3]domain.Finger{domain.LeftMiddle, domain.LeftMiddle, domain.LeftMiddle}, domain.MetricSameFingerTrigram},
		{[3]domain.Finger{domain.LeftMiddle, domain.LeftMiddle, domain.RightIndex}, domain.MetricSameFingerBigram},
		{[3]domain.Finger{domain.LeftMiddle, domain.RightIndex, domain.LeftRing}, domain.MetricAlternation},
		{[3]domain.Finger{domain.LeftMiddle, domain.RightIndex, domain.LeftMiddle}, domain.MetricAlternationSkip},
		{[3]domain.Finger{domain.LeftMiddle, domain.RightThumb, domain.LeftMiddle}, domain.MetricSameFingerSkip},
		{[3]domain.Finger{domain.LeftPinky, domain.LeftRing, domain.LeftMiddle}, domain.MetricInwardOneHand},
		{[3]domain.Finger{domain.RightIndex, domain.RightMiddle, domain.RightRing}, domain.MetricOutwardOneHand},
		{[3]domain.Finger{domain.LeftRing, domain.LeftMiddle, domain.RightIndex}, domain.MetricInwardRoll},
		{[3]domain.Finger{domain.RightIndex, domain.LeftMiddle, domain.LeftRing}, domain.MetricOutwardRoll},
		{[3]domain.Finger{domain.LeftRing, domain.LeftIndex, domain.LeftMiddle}, domain.MetricBadRedirect},
		{[3]domain.Finger{domain.LeftIndex, domain.LeftMiddle, domain.LeftRing}, domain.MetricOutwardOneHand},
		{[3]domain.Finger{domain.LeftIndex, domain.LeftRing, domain.LeftMiddle}, domain.MetricRedirect},
		{[3]domain.Finger{domain.LeftMiddle, domain.LeftRing, domain.LeftMiddle}, domain.MetricRedirectSkip},
		{[3]domain.Finger{domain.LeftMiddle, domain.LeftIndex, domain.LeftMiddle}, domain.MetricBadRedirectSkip},
	}
	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Lookup(tt.combo[0], tt.combo[1], tt.combo[2]))
		})
	}
}

func TestParseTable(t *testing.T) {
	table, err := analyzer.ParseTable([]byte("combos:\n  LI-LM-RR: redirect\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.MetricRedirect, table.Lookup(domain.LeftIndex, domain.LeftMiddle, domain.RightRing))
	assert.Equal(t, domain.MetricUnknown, table.Lookup(domain.LeftIndex, domain.LeftMiddle, domain.RightPinky))
	assert.Equal(t, uint16(0x378), analyzer.Key(domain.LeftIndex, domain.RightMiddle, domain.RightRing))

	_, err = analyzer.LoadTable(strings.NewReader("combos:\n  LP-LP-LP: same-finger-trigram\n"))
	require.NoError(t, err)
}

func TestParseTable_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown finger", "combos:\n  LI-XX-RR: redirect\n"},
		{"aggregate finger", "combos:\n  LI-LH-RR: redirect\n"},
		{"unknown metric", "combos:\n  LI-LM-RR: sideways\n"},
		{"short combo", "combos:\n  LI-LM: redirect\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzer.ParseTable([]byte(tt.doc))
			require.ErrorIs(t, err, domain.ErrCorrupt)
		})
	}

	t.Run("syntax", func(t *testing.T) {
		_, err := analyzer.ParseTable([]byte("combos: [unterminated"))
		require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}

func TestClassify(t *testing.T) {
	table, err := analyzer.DefaultTable()
	require.NoError(t, err)
	cls := analyzer.NewClassifier(table)

	keys := map[rune]domain.Position{
		'a': {Row: 1, Col: 3, Finger: domain.LeftIndex},
		's': {Row: 1, Col: 2, Finger: domain.LeftMiddle},
		'k': {Row: 1, Col: 7, Finger: domain.RightMiddle},
	}
	layout := codec.NewLayout("partial", 1, domain.BoardOrtho, keys)

	t.Run("unassigned character is unknown", func(t *testing.T) {
		m, ok := cls.Classify(domain.Gram{'a', 's', 'd'}, layout)
		require.True(t, ok)
		assert.Equal(t, domain.MetricUnknown, m)
	})

	t.Run("boundary is skipped", func(t *testing.T) {
		_, ok := cls.Classify(domain.Gram{'a', ' ', 's'}, layout)
		assert.False(t, ok)
	})

	t.Run("repeat ignores the table", func(t *testing.T) {
		empty := analyzer.NewClassifier(analyzer.NewTable())
		for _, g := range []domain.Gram{{'a', 'a', 'a'}, {'a', 'a', 's'}, {'a', 's', 'a'}, {'z', 'q', 'z'}} {
			m, ok := empty.Classify(g, layout)
			require.True(t, ok)
			assert.Equal(t, analyzer.RepeatMetric, m)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, _ := cls.Classify(domain.Gram{'s', 'a', 'k'}, layout)
		for range 100 {
			got, _ := cls.Classify(domain.Gram{'s', 'a', 'k'}, layout)
			require.Equal(t, first, got)
		}
		assert.Equal(t, domain.MetricInwardRoll, first)
	})
}

func TestTrigrams(t *testing.T) {
	table, err := analyzer.DefaultTable()
	require.NoError(t, err)
	cls := analyzer.NewClassifier(table)
	layout := qwerty(t)

	corpus := trigramCorpus(t, map[string]uint64{
		"the": 50,
		"he ": 30,
		"and": 25,
		"ing": 20,
		"é a": 5,
		"xé!": 5,
	})

	stat, err := cls.Trigrams(layout, corpus)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stat.Sum(), 1e-5)
	assert.InDelta(t, 5.0/100.0, stat.Get(domain.MetricUnknown), 1e-9)
}

func TestTrigrams_Degenerate(t *testing.T) {
	table, err := analyzer.DefaultTable()
	require.NoError(t, err)
	cls := analyzer.NewClassifier(table)

	_, err = cls.Trigrams(qwerty(t), trigramCorpus(t, map[string]uint64{"a b": 10}))
	require.ErrorIs(t, err, domain.ErrDegenerate)

	_, err = cls.Trigrams(qwerty(t), &domain.Corpus{Name: "empty", Size: domain.Trigram})
	require.ErrorIs(t, err, domain.ErrDegenerate)
}

func TestTrigrams_SumsToOne(t *testing.T) {
	table, err := analyzer.DefaultTable()
	require.NoError(t, err)
	cls := analyzer.NewClassifier(table)
	layout := qwerty(t)

	alphabet := []rune("abcdefghijklmnopqrstuvwxyz;,./' é")
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		corpus := &domain.Corpus{Name: "random", Size: domain.Trigram}
		for range 200 {
			var g domain.Gram
			for i := range g {
				g[i] = alphabet[rng.IntN(len(alphabet))]
			}
			corpus.Grams = append(corpus.Grams, domain.GramCount{Gram: g, Count: rng.Uint64N(1000) + 1})
		}
		stat, err := cls.Trigrams(layout, corpus)
		if err != nil {
			require.ErrorIs(t, err, domain.ErrDegenerate)
			continue
		}
		assert.InDelta(t, 1.0, stat.Sum(), 1e-5)
	}
}

func TestFingersUsage(t *testing.T) {
	layout := qwerty(t)
	monograms := &domain.Corpus{Name: "mono", Size: domain.Monogram, Grams: []domain.GramCount{
		{Gram: domain.Gram{'a'}, Count: 40},
		{Gram: domain.Gram{'j'}, Count: 30},
		{Gram: domain.Gram{'k'}, Count: 30},
		{Gram: domain.Gram{'@'}, Count: 900},
	}}

	usage, err := analyzer.FingersUsage(layout, monograms)
	require.NoError(t, err)

	assert.InDelta(t, 0.4, usage.Get(domain.LeftPinky), 1e-9)
	assert.InDelta(t, 0.3, usage.Get(domain.RightIndex), 1e-9)
	assert.InDelta(t, 0.3, usage.Get(domain.RightMiddle), 1e-9)
	assert.InDelta(t, 0.4, usage.Get(domain.LeftHand), 1e-9)
	assert.InDelta(t, 0.6, usage.Get(domain.RightHand), 1e-9)

	var physical float64
	for f := range domain.PhysicalFingers {
		physical += usage[f]
	}
	assert.InDelta(t, 1.0, physical, 1e-9)

	_, err = analyzer.FingersUsage(layout, &domain.Corpus{Name: "none", Size: domain.Monogram})
	require.ErrorIs(t, err, domain.ErrDegenerate)
}
