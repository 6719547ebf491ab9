// Package codec packs layouts and stats into compact, fixed-width text.
package codec

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// positionWidth is the number of hex digits used for one position.
	positionWidth = 3
	// entryWidth is the number of runes used for one packed key.
	entryWidth = 1 + positionWidth
	// nibble masks each position field to four bits.
	nibble = 0xf
)

// PackPosition encodes a position as three hex digits: row, column, finger.
func PackPosition(pos domain.Position) string {
	v := (uint16(pos.Row)&nibble)<<8 | (uint16(pos.Col)&nibble)<<4 | uint16(pos.Finger)&nibble
	return fmt.Sprintf("%03x", v)
}

// UnpackPosition decodes three hex digits produced by PackPosition.
func UnpackPosition(s string) (domain.Position, error) {
	if len(s) != positionWidth {
		return domain.Position{}, zerr.With(domain.ErrPackedMalformed, "position", s)
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return domain.Position{}, zerr.With(domain.ErrPackedMalformed, "position", s)
	}
	finger := domain.Finger(v & nibble)
	if !finger.IsPhysical() {
		return domain.Position{}, zerr.With(domain.ErrPackedMalformed, "position", s)
	}
	return domain.Position{
		Row:    uint8(v >> 8 & nibble),
		Col:    uint8(v >> 4 & nibble),
		Finger: finger,
	}, nil
}

// PackLayout encodes a key assignment canonically: entries are ordered by
// row, then column, so the result does not depend on map iteration order.
func PackLayout(keys map[rune]domain.Position) string {
	chars := make([]rune, 0, len(keys))
	for r := range keys {
		chars = append(chars, r)
	}
	slices.SortFunc(chars, func(a, b rune) int {
		pa, pb := keys[a], keys[b]
		return cmp.Or(
			cmp.Compare(pa.Row, pb.Row),
			cmp.Compare(pa.Col, pb.Col),
			cmp.Compare(a, b),
		)
	})

	var sb strings.Builder
	sb.Grow(len(chars) * (entryWidth + 1))
	for _, r := range chars {
		sb.WriteRune(r)
		sb.WriteString(PackPosition(keys[r]))
	}
	return sb.String()
}

// UnpackLayout decodes a string produced by PackLayout.
func UnpackLayout(packed string) (map[rune]domain.Position, error) {
	if !utf8.ValidString(packed) {
		return nil, zerr.With(domain.ErrPackedMalformed, "layout", packed)
	}
	runes := []rune(packed)
	if len(runes)%entryWidth != 0 {
		return nil, zerr.With(domain.ErrPackedMalformed, "layout", packed)
	}

	keys := make(map[rune]domain.Position, len(runes)/entryWidth)
	for i := 0; i < len(runes); i += entryWidth {
		r := runes[i]
		pos, err := UnpackPosition(string(runes[i+1 : i+entryWidth]))
		if err != nil {
			return nil, zerr.With(err, "key", string(r))
		}
		if _, dup := keys[r]; dup {
			return nil, zerr.With(domain.ErrPackedMalformed, "duplicate_key", string(r))
		}
		keys[r] = pos
	}
	return keys, nil
}

// Checksum hashes the canonical packed form of a key assignment.
func Checksum(keys map[rune]domain.Position) uint64 {
	return ChecksumPacked(PackLayout(keys))
}

// ChecksumPacked hashes an already packed layout string.
func ChecksumPacked(packed string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(packed)
	return h.Sum64()
}

// FormatChecksum renders a checksum as 16 lowercase hex digits.
func FormatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// ParseChecksum decodes a checksum rendered by FormatChecksum.
func ParseChecksum(s string) (uint64, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, zerr.With(domain.ErrPackedMalformed, "checksum", s)
	}
	sum, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, zerr.With(domain.ErrPackedMalformed, "checksum", s)
	}
	return sum, nil
}

// NewLayout builds a layout and stamps it with the checksum of its keys.
func NewLayout(name string, owner uint64, board domain.BoardShape, keys map[rune]domain.Position) *domain.Layout {
	return &domain.Layout{
		Name:     name,
		Owner:    owner,
		Board:    board,
		Keys:     keys,
		Checksum: Checksum(keys),
	}
}
