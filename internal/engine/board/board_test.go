package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmini/internal/codec"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/cmini/internal/engine/board"
)

const qwertyOrtho = `qwertyuiop
asdfghjkl;
zxcvbnm,./`

func TestInferShape(t *testing.T) {
	tests := []struct {
		name     string
		indents  []int
		expected domain.BoardShape
	}{
		{"stagger", []int{0, 1, 2}, domain.BoardStagger},
		{"stagger wide", []int{0, 2, 5}, domain.BoardStagger},
		{"angle", []int{0, 0, 1}, domain.BoardAngle},
		{"mini", []int{0, 0, 2}, domain.BoardMini},
		{"mini with thumb row", []int{0, 0, 4, 9}, domain.BoardMini},
		{"ortho", []int{0, 0, 0}, domain.BoardOrtho},
		{"ortho indented", []int{1, 1, 1}, domain.BoardOrtho},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := board.InferShape(tt.indents)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, indents := range [][]int{{1, 0, 0}, {0, 1, 1}, {2, 1, 0}, {0, 0}} {
		_, err := board.InferShape(indents)
		require.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestParse_Ortho(t *testing.T) {
	p := board.NewParser(0)

	shape, keys, err := p.Parse(qwertyOrtho)
	require.NoError(t, err)
	assert.Equal(t, domain.BoardOrtho, shape)
	assert.Len(t, keys, 30)

	assert.Equal(t, domain.Position{Row: 0, Col: 0, Finger: domain.LeftPinky}, keys['q'])
	assert.Equal(t, domain.Position{Row: 0, Col: 4, Finger: domain.LeftIndex}, keys['t'])
	assert.Equal(t, domain.Position{Row: 0, Col: 5, Finger: domain.RightIndex}, keys['y'])
	assert.Equal(t, domain.Position{Row: 1, Col: 9, Finger: domain.RightPinky}, keys[';'])
	assert.Equal(t, domain.Position{Row: 2, Col: 0, Finger: domain.LeftPinky}, keys['z'])
}

func TestParse_Spacing(t *testing.T) {
	p := board.NewParser(0)

	shape, keys, err := p.Parse("q w e r t  y u i o p\na s d f g  h j k l ;\nz x c v b  n m , . /")
	require.NoError(t, err)
	assert.Equal(t, domain.BoardOrtho, shape)
	assert.Equal(t, uint8(5), keys['y'].Col)
}

func TestParse_AngleBottomRow(t *testing.T) {
	p := board.NewParser(0)

	shape, keys, err := p.Parse("qwertyuiop\nasdfghjkl;\n zxcvbnm,./")
	require.NoError(t, err)
	assert.Equal(t, domain.BoardAngle, shape)

	assert.Equal(t, domain.LeftRing, keys['z'].Finger)
	assert.Equal(t, domain.LeftMiddle, keys['x'].Finger)
	assert.Equal(t, domain.LeftIndex, keys['b'].Finger)
	assert.Equal(t, domain.LeftPinky, keys['a'].Finger, "upper rows keep the standard map")
}

func TestParse_ClampsWideColumns(t *testing.T) {
	p := board.NewParser(0)

	_, keys, err := p.Parse("qwertyuiop[]\nasdfghjkl;'\nzxcvbnm,./")
	require.NoError(t, err)
	assert.Equal(t, uint8(11), keys[']'].Col)
	assert.Equal(t, domain.RightPinky, keys[']'].Finger)
}

func TestParse_ThumbRow(t *testing.T) {
	p := board.NewParser(0)

	t.Run("right thumb", func(t *testing.T) {
		shape, keys, err := p.Parse("qwert\nasdfg\n  zxcvb\n    _")
		require.NoError(t, err)
		assert.Equal(t, domain.BoardMini, shape)
		assert.Equal(t, domain.Position{Row: 3, Col: 0, Finger: domain.RightThumb}, keys['_'])
	})

	t.Run("left thumb", func(t *testing.T) {
		_, keys, err := p.Parse("qwert\nasdfg\n  zxcvb\n          _")
		require.NoError(t, err)
		assert.Equal(t, domain.LeftThumb, keys['_'].Finger)
	})

	t.Run("thumb row on ortho", func(t *testing.T) {
		_, _, err := p.Parse(qwertyOrtho + "\n_")
		require.ErrorIs(t, err, domain.ErrValidation)
		require.ErrorContains(t, err, "too many rows")
	})
}

func TestParse_FreeSlot(t *testing.T) {
	p := board.NewParser('~')

	t.Run("inside a row", func(t *testing.T) {
		_, keys, err := p.Parse("qw~rt\nasdfg\nzxcvb")
		require.NoError(t, err)
		assert.NotContains(t, keys, '~')
		assert.Equal(t, domain.Position{Row: 0, Col: 2, Finger: domain.LeftMiddle}, keys['r'])
	})

	t.Run("leading slot", func(t *testing.T) {
		_, keys, err := p.Parse("~qwertyuio\nasdfghjkl;\nzxcvbnm,./")
		require.NoError(t, err)
		assert.Equal(t, domain.Position{Row: 0, Col: 0, Finger: domain.LeftPinky}, keys['q'])
		assert.Equal(t, domain.Position{Row: 0, Col: 8, Finger: domain.RightRing}, keys['o'])
	})

	t.Run("thumb row", func(t *testing.T) {
		shape, keys, err := p.Parse("qwert\nasdfg\n  zxcvb\n    ~ _")
		require.NoError(t, err)
		assert.Equal(t, domain.BoardMini, shape)
		assert.Equal(t, domain.Position{Row: 3, Col: 0, Finger: domain.RightThumb}, keys['_'])
	})
}

func TestParse_LeadingIndentation(t *testing.T) {
	p := board.NewParser(0)

	t.Run("uniform indentation", func(t *testing.T) {
		_, _, err := p.Parse("  qwertyuiop\n  asdfghjkl;\n  zxcvbnm,./")
		require.ErrorIs(t, err, domain.ErrValidation)
		require.ErrorContains(t, err, "board shape undefined")
	})

	t.Run("first row shifted", func(t *testing.T) {
		shape, _, err := p.Parse(" qwertyuiop\n asdfghjkl;\n  zxcvbnm,./")
		require.NoError(t, err)
		assert.Equal(t, domain.BoardStagger, shape)
	})

	t.Run("surrounding blank lines", func(t *testing.T) {
		shape, keys, err := p.Parse("\n\n" + qwertyOrtho + "\n\n")
		require.NoError(t, err)
		assert.Equal(t, domain.BoardOrtho, shape)
		assert.Len(t, keys, 30)
	})
}

func TestParse_Rejections(t *testing.T) {
	p := board.NewParser(0)

	tests := []struct {
		name   string
		matrix string
	}{
		{"too few rows", "qwerty\nasdfgh"},
		{"undefined shape", "qwerty\n  asdfgh\nzxcvbn"},
		{"duplicate key", "qwerty\nasdfgq\nzxcvbn"},
		{"row too wide", "abcdefghijklmnopq\nrstuvw\nxyz123"},
		{"too many rows for mini", "qwert\nasdfg\n  zxcvb\n  _\n  -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, keys, err := p.Parse(tt.matrix)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, shape)
			assert.Nil(t, keys)
		})
	}
}

func TestCheckName(t *testing.T) {
	valid := []string{"qwerty", "semimak-jq", "the_one", "o'neil", "(x):y~"}
	for _, name := range valid {
		require.NoError(t, board.CheckName(name), name)
	}

	tests := []struct {
		name    string
		message string
	}{
		{"_hidden", "underscore"},
		{"ab", "at least 3"},
		{"has space", "cannot contain ` `"},
		{"semi/mak", "cannot contain `/`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := board.CheckName(tt.name)
			require.ErrorIs(t, err, domain.ErrValidation)
			require.ErrorContains(t, err, tt.message)
		})
	}
}

func TestBuild(t *testing.T) {
	p := board.NewParser(0)

	l, err := p.Build("  QWERTY ", 42, "QWERTYUIOP\nASDFGHJKL;\nZXCVBNM,./")
	require.NoError(t, err)
	assert.Equal(t, "qwerty", l.Name)
	assert.Equal(t, uint64(42), l.Owner)
	assert.Contains(t, l.Keys, 'q')
	assert.NotContains(t, l.Keys, 'Q')
	assert.Equal(t, codec.Checksum(l.Keys), l.Checksum)

	_, err = p.Build("_x", 42, qwertyOrtho)
	require.ErrorIs(t, err, domain.ErrValidation)
}
