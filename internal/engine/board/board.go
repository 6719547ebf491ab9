// Package board turns a raw layout submission into validated key positions.
package board

import (
	"strings"
	"unicode"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// MinRows is the number of rows every submission must have.
	MinRows = 3
	// MaxCols is the number of addressable columns per row.
	MaxCols = 16
	// DefaultFreeChar marks an empty slot. It is dropped before columns are numbered.
	DefaultFreeChar = '~'
	// thumbSplit is the indentation beyond which a thumb row belongs to the left thumb.
	thumbSplit = 8
)

// fingerMapStandard maps a column index, clamped to 9, to its finger.
var fingerMapStandard = [10]domain.Finger{
	domain.LeftPinky, domain.LeftRing, domain.LeftMiddle, domain.LeftIndex, domain.LeftIndex,
	domain.RightIndex, domain.RightIndex, domain.RightMiddle, domain.RightRing, domain.RightPinky,
}

// fingerMapAngle replaces fingerMapStandard on the bottom row of angle boards,
// where the left hand shifts one column toward the centre.
var fingerMapAngle = [10]domain.Finger{
	domain.LeftRing, domain.LeftMiddle, domain.LeftIndex, domain.LeftIndex, domain.LeftIndex,
	domain.RightIndex, domain.RightIndex, domain.RightMiddle, domain.RightRing, domain.RightPinky,
}

// Parser parses layout matrices.
type Parser struct {
	free rune
}

// NewParser creates a Parser that treats free as an empty slot marker.
func NewParser(free rune) *Parser {
	if free == 0 {
		free = DefaultFreeChar
	}
	return &Parser{free: free}
}

// Parse infers the board shape of matrix and assigns every character a position.
// Either the whole matrix is accepted or an error is returned; no partial
// assignment ever escapes.
func (p *Parser) Parse(matrix string) (domain.BoardShape, map[rune]domain.Position, error) {
	rows := splitRows(matrix)
	if len(rows) < MinRows {
		return "", nil, zerr.With(domain.ErrTooFewRows, "rows", len(rows))
	}

	indents := make([]int, len(rows))
	for i, row := range rows {
		indents[i] = indentation(row)
	}

	shape, err := InferShape(indents)
	if err != nil {
		return "", nil, err
	}
	if len(rows) > shape.MaxRows() {
		err := zerr.With(domain.ErrTooManyRows, "board", string(shape))
		err = zerr.With(err, "max_rows", shape.MaxRows())
		return "", nil, zerr.With(err, "rows", len(rows))
	}

	keys := make(map[rune]domain.Position)
	for rowIdx, row := range rows[:MinRows] {
		fmap := &fingerMapStandard
		if rowIdx == 2 && shape == domain.BoardAngle {
			fmap = &fingerMapAngle
		}
		err := p.assignRow(keys, row, rowIdx, func(col int) domain.Finger {
			return fmap[min(col, len(fmap)-1)]
		})
		if err != nil {
			return "", nil, err
		}
	}

	if len(rows) > MinRows {
		thumb := domain.RightThumb
		if indents[MinRows] > thumbSplit {
			thumb = domain.LeftThumb
		}
		err := p.assignRow(keys, rows[MinRows], MinRows, func(int) domain.Finger {
			return thumb
		})
		if err != nil {
			return "", nil, err
		}
	}

	return shape, keys, nil
}

func (p *Parser) assignRow(keys map[rune]domain.Position, row string, rowIdx int, finger func(col int) domain.Finger) error {
	col := 0
	for _, r := range row {
		// Free slots are dropped before columns are numbered.
		if unicode.IsSpace(r) || r == p.free {
			continue
		}
		if col >= MaxCols {
			err := zerr.With(domain.ErrRowTooWide, "row", rowIdx+1)
			return zerr.With(err, "max_cols", MaxCols)
		}
		if _, dup := keys[r]; dup {
			return zerr.With(domain.ErrDuplicateKey, "key", string(r))
		}
		keys[r] = domain.Position{
			Row:    uint8(rowIdx),
			Col:    uint8(col),
			Finger: finger(col),
		}
		col++
	}
	return nil
}

// InferShape picks the board shape from the leading whitespace of each row.
// The cases are checked in order; Parse always passes a first row with no
// indentation.
func InferShape(indents []int) (domain.BoardShape, error) {
	if len(indents) < MinRows {
		return "", zerr.With(domain.ErrTooFewRows, "rows", len(indents))
	}
	s0, s1, s2 := indents[0], indents[1], indents[2]
	switch {
	case s0 < s1 && s1 < s2:
		return domain.BoardStagger, nil
	case s0 == s1 && s2 > 1:
		return domain.BoardMini, nil
	case s0 == s1 && s1 < s2:
		return domain.BoardAngle, nil
	case s0 == s1 && s1 == s2:
		return domain.BoardOrtho, nil
	default:
		return "", zerr.With(domain.ErrBoardUndefined, "indents", indents[:MinRows])
	}
}

// splitRows trims the whole matrix before splitting it, so the first row is
// always measured with no indentation. Interior blank lines are kept.
func splitRows(matrix string) []string {
	matrix = strings.TrimSpace(strings.ReplaceAll(matrix, "\r\n", "\n"))
	if matrix == "" {
		return nil
	}
	return strings.Split(matrix, "\n")
}

func indentation(row string) int {
	n := 0
	for _, r := range row {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
