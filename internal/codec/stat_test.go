package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmini/internal/codec"
	"go.trai.ch/cmini/internal/core/domain"
)

func TestPackFrequency(t *testing.T) {
	tests := []struct {
		freq     float64
		expected string
	}{
		{0, "AAA"},
		{0.00001, "AAB"},
		{0.00064, "ABA"},
		{1, "Yag"},
		{-0.5, "AAA"},
		{5, "///"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.PackFrequency(tt.freq))
		})
	}
}

func TestPackStat_RoundTrip(t *testing.T) {
	stat := &domain.Stat{}
	weights := []float64{0.013, 0.0002, 0.0011, 0.31, 0.022, 0.041, 0.0033, 0.006, 0.0012, 0.071, 0.052, 0.2609, 0.2074, 0.0109}
	copy(stat[:], weights)

	packed := codec.PackStat(stat)
	assert.Len(t, packed, codec.PackedStatLen)

	got, err := codec.UnpackStat(packed)
	require.NoError(t, err)
	assert.True(t, stat.ApproxEqual(got, 1e-5), "expected %v, got %v", stat, got)
}

func TestUnpackStat_Malformed(t *testing.T) {
	_, err := codec.UnpackStat("AAA")
	require.ErrorIs(t, err, domain.ErrCorrupt)

	bad := []byte(codec.PackStat(&domain.Stat{}))
	bad[4] = '*'
	_, err = codec.UnpackStat(string(bad))
	require.ErrorIs(t, err, domain.ErrCorrupt)
}
