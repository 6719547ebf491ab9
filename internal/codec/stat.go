package codec

import (
	"math"
	"strings"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// StatScale is the quantization factor applied to frequencies.
	StatScale = 100000
	// symbolsPerMetric is the number of alphabet symbols per packed frequency.
	symbolsPerMetric = 3
	// maxQuantum is the largest value representable by three symbols.
	maxQuantum = 1<<(6*symbolsPerMetric) - 1
	// PackedStatLen is the length of a packed Stat.
	PackedStatLen = domain.MetricCount * symbolsPerMetric
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var alphabetIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := range len(alphabet) {
		idx[alphabet[i]] = int8(i)
	}
	return idx
}()

// PackFrequency quantizes a frequency to five decimal places and encodes it
// as three alphabet symbols.
func PackFrequency(freq float64) string {
	num := math.Round(freq * StatScale)
	switch {
	case num < 0 || math.IsNaN(num):
		num = 0
	case num > maxQuantum:
		num = maxQuantum
	}
	n := uint32(num)
	return string([]byte{
		alphabet[n>>12&0x3f],
		alphabet[n>>6&0x3f],
		alphabet[n&0x3f],
	})
}

// UnpackFrequency decodes three symbols produced by PackFrequency.
func UnpackFrequency(s string) (float64, error) {
	if len(s) != symbolsPerMetric {
		return 0, zerr.With(domain.ErrPackedMalformed, "frequency", s)
	}
	var n uint32
	for i := range symbolsPerMetric {
		v := alphabetIndex[s[i]]
		if v < 0 {
			return 0, zerr.With(domain.ErrPackedMalformed, "frequency", s)
		}
		n = n<<6 | uint32(v)
	}
	return float64(n) / StatScale, nil
}

// PackStat encodes every metric of stat in declaration order.
func PackStat(stat *domain.Stat) string {
	var sb strings.Builder
	sb.Grow(PackedStatLen)
	for _, freq := range stat {
		sb.WriteString(PackFrequency(freq))
	}
	return sb.String()
}

// UnpackStat decodes a string produced by PackStat.
func UnpackStat(packed string) (*domain.Stat, error) {
	if len(packed) != PackedStatLen {
		return nil, zerr.With(zerr.With(domain.ErrPackedMalformed, "stat", packed), "length", len(packed))
	}
	var stat domain.Stat
	for i := range stat {
		off := i * symbolsPerMetric
		freq, err := UnpackFrequency(packed[off : off+symbolsPerMetric])
		if err != nil {
			return nil, zerr.With(err, "metric", domain.Metric(i).String())
		}
		stat[i] = freq
	}
	return &stat, nil
}
