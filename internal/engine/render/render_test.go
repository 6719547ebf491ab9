package render_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/cmini/internal/engine/board"
	"go.trai.ch/cmini/internal/engine/render"
)

func build(t *testing.T, name, matrix string) *domain.Layout {
	t.Helper()
	l, err := board.NewParser(0).Build(name, 1, matrix)
	require.NoError(t, err)
	return l
}

func sampleStat() *domain.Stat {
	s := &domain.Stat{}
	s[domain.MetricAlternation] = 0.3
	s[domain.MetricInwardRoll] = 0.2
	s[domain.MetricOutwardRoll] = 0.1
	s[domain.MetricInwardOneHand] = 0.05
	s[domain.MetricOutwardOneHand] = 0.02
	s[domain.MetricRedirect] = 0.04
	s[domain.MetricBadRedirect] = 0.01
	s[domain.MetricBadRedirectSkip] = 0.005
	s[domain.MetricSameFingerBigram] = 0.06
	s[domain.MetricAlternationSkip] = 0.03
	s[domain.MetricRedirectSkip] = 0.02
	return s
}

func sampleUsage() *domain.FingerUsage {
	u := &domain.FingerUsage{}
	u[domain.LeftHand] = 0.45
	u[domain.RightHand] = 0.55
	return u
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		name   string
		matrix string
	}{
		{"matrix_ortho", "qwertyuiop\nasdfghjkl;\nzxcvbnm,./"},
		{"matrix_stagger", "qwertyuiop\n asdfghjkl;\n  zxcvbnm,./"},
		{"matrix_angle", "qwertyuiop\nasdfghjkl;\n zxcvbnm,./"},
		{"matrix_mini_thumb", "qwertyuiop\nasdfghjkl;\n   zxcvbnm,\n   ~ ."},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := build(t, "sample", tt.matrix)
			g.Assert(t, tt.name, []byte(render.Matrix(l)))
		})
	}
}

func TestStats(t *testing.T) {
	g := goldie.New(t)

	t.Run("with usage", func(t *testing.T) {
		g.Assert(t, "stats_usage", []byte(render.Stats(sampleStat(), sampleUsage())))
	})

	t.Run("without usage", func(t *testing.T) {
		g.Assert(t, "stats_plain", []byte(render.Stats(sampleStat(), nil)))
	})
}

func TestView(t *testing.T) {
	g := goldie.New(t)

	t.Run("full", func(t *testing.T) {
		v := &render.View{
			Layout: build(t, "qwerty", "qwertyuiop\nasdfghjkl;\nzxcvbnm,./"),
			Author: "eva",
			Likes:  1,
			Corpus: "mt-quotes",
			Stat:   sampleStat(),
			Usage:  sampleUsage(),
			Link:   "https://example.com/qwerty",
		}
		g.Assert(t, "view_full", []byte(v.String()))
	})

	t.Run("bare", func(t *testing.T) {
		v := &render.View{
			Layout: build(t, "semimak", "flhvzqwuoy\nsrntkcdeai\nx'bmjpg,./"),
			Author: domain.UnknownAuthor,
			Likes:  2,
		}
		g.Assert(t, "view_bare", []byte(v.String()))
	})
}
