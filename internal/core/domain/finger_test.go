package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmini/internal/core/domain"
)

func TestParseFinger(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Finger
	}{
		{"LP", domain.LeftPinky},
		{"lr", domain.LeftRing},
		{" LM ", domain.LeftMiddle},
		{"LI", domain.LeftIndex},
		{"LT", domain.LeftThumb},
		{"RT", domain.RightThumb},
		{"RI", domain.RightIndex},
		{"RM", domain.RightMiddle},
		{"RR", domain.RightRing},
		{"RP", domain.RightPinky},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseFinger(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, uint8(tt.expected), uint8(got))
		})
	}

	t.Run("aggregates are not physical", func(t *testing.T) {
		_, err := domain.ParseFinger("LH")
		require.ErrorIs(t, err, domain.ErrCorrupt)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := domain.ParseFinger("XX")
		require.ErrorIs(t, err, domain.ErrCorrupt)
	})
}

func TestFinger_Properties(t *testing.T) {
	assert.True(t, domain.LeftThumb.IsLeft())
	assert.False(t, domain.RightThumb.IsLeft())
	assert.True(t, domain.RightPinky.IsPhysical())
	assert.False(t, domain.LeftHand.IsPhysical())
	assert.Equal(t, "RH", domain.RightHand.String())

	assert.Equal(t, 0, domain.LeftPinky.Inward())
	assert.Equal(t, 0, domain.RightPinky.Inward())
	assert.Equal(t, 3, domain.LeftIndex.Inward())
	assert.Equal(t, 3, domain.RightIndex.Inward())

	for _, f := range []domain.Finger{domain.LeftPinky, domain.LeftIndex, domain.RightIndex, domain.RightPinky} {
		assert.True(t, f.IsExtreme(), f.String())
	}
	assert.False(t, domain.LeftMiddle.IsExtreme())
	assert.True(t, domain.RightThumb.IsThumb())
}

func TestParseMetric(t *testing.T) {
	for _, m := range domain.Metrics() {
		got, err := domain.ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Len(t, domain.Metrics(), 14)

	_, err := domain.ParseMetric("sfr")
	require.ErrorIs(t, err, domain.ErrCorrupt)
}

func TestParseGram(t *testing.T) {
	g, err := domain.ParseGram("th", domain.Bigram)
	require.NoError(t, err)
	assert.Equal(t, domain.Gram{'t', 'h', 0}, g)

	g, err = domain.ParseGram("é a", domain.Trigram)
	require.NoError(t, err)
	assert.Equal(t, domain.Gram{'é', ' ', 'a'}, g)

	_, err = domain.ParseGram("abcd", domain.Trigram)
	require.ErrorIs(t, err, domain.ErrCorrupt)

	_, err = domain.ParseGram("a", domain.Bigram)
	require.ErrorIs(t, err, domain.ErrCorrupt)
}

func TestCachedEntry_With(t *testing.T) {
	base := domain.NewCachedEntry(42)
	first := &domain.Stat{}
	first[domain.MetricAlternation] = 1

	next := base.With("mt-quotes", first)

	assert.Empty(t, base.Stats, "original entry must not be patched")
	assert.Equal(t, uint64(42), next.Checksum)
	assert.Same(t, first, next.Stats["mt-quotes"])
}
