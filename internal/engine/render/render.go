// Package render formats layouts and their statistics as plain text.
package render

import (
	"fmt"
	"strings"

	"go.trai.ch/cmini/internal/core/domain"
)

const (
	gridRows  = 4
	gridCols  = 16
	leftWidth = 5
)

// Matrix draws the keys of l on a grid, offsetting rows the way the board is
// staggered. The thumb row is omitted when empty.
func Matrix(l *domain.Layout) string {
	var grid [gridRows][gridCols]rune
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	for key, pos := range l.Keys {
		if int(pos.Row) >= gridRows || int(pos.Col) >= gridCols {
			continue
		}
		grid[pos.Row][pos.Col] = key
	}

	var indent [gridRows]string
	switch l.Board {
	case domain.BoardAngle:
		indent[2] = " "
	case domain.BoardStagger:
		indent[1] = " "
		indent[2] = "  "
	}

	rows := make([]string, 0, gridRows)
	for r, keys := range grid {
		var sb strings.Builder
		sb.WriteString("  ")
		sb.WriteString(indent[r])
		for c, key := range keys {
			if c == leftWidth {
				sb.WriteByte(' ')
			}
			sb.WriteRune(key)
			sb.WriteByte(' ')
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	if rows[gridRows-1] == "" {
		rows = rows[:gridRows-1]
	}
	return strings.Join(rows, "\n")
}

// Stats summarizes a stat and finger usage as percentages.
func Stats(stat *domain.Stat, usage *domain.FingerUsage) string {
	pct := func(m domain.Metric) float64 { return stat.Get(m) * 100 }

	alt := pct(domain.MetricAlternation)
	inRoll, outRoll := pct(domain.MetricInwardRoll), pct(domain.MetricOutwardRoll)
	inOne, outOne := pct(domain.MetricInwardOneHand), pct(domain.MetricOutwardOneHand)
	roll, one := inRoll+outRoll, inOne+outOne

	badRedSfs := pct(domain.MetricBadRedirectSkip)
	badRed := pct(domain.MetricBadRedirect) + badRedSfs
	red := pct(domain.MetricRedirect) + badRed

	sfb := pct(domain.MetricSameFingerBigram) / 2

	altSfs := pct(domain.MetricAlternationSkip)
	redSfs := pct(domain.MetricRedirectSkip) + badRedSfs

	var sb strings.Builder
	fmt.Fprintf(&sb, "  Alt: %5.2f%%\n", alt)
	fmt.Fprintf(&sb, "  Rol: %5.2f%%   (In/Out: %5.2f%% | %5.2f%%)\n", roll, inRoll, outRoll)
	fmt.Fprintf(&sb, "  One: %5.2f%%   (In/Out: %5.2f%% | %5.2f%%)\n", one, inOne, outOne)
	fmt.Fprintf(&sb, "  Rtl: %5.2f%%   (In/Out: %5.2f%% | %5.2f%%)\n", roll+one, inRoll+inOne, outRoll+outOne)
	fmt.Fprintf(&sb, "  Red: %5.2f%%   (Bad:    %5.2f%%)\n", red, badRed)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  SFB: %5.2f%%\n", sfb)
	fmt.Fprintf(&sb, "  SFS: %5.2f%%   (Red/Alt: %5.2f%% | %5.2f%%)\n", altSfs+redSfs, redSfs, altSfs)
	if usage != nil {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  LH/RH: %5.2f%% | %5.2f%%\n",
			usage.Get(domain.LeftHand)*100, usage.Get(domain.RightHand)*100)
	}
	return sb.String()
}

// View is everything shown for one layout.
type View struct {
	Layout *domain.Layout
	Author string
	Likes  int
	Corpus string
	Stat   *domain.Stat
	Usage  *domain.FingerUsage
	Link   string
}

// String renders the header, the key matrix, the stats block and the link.
func (v *View) String() string {
	noun := "likes"
	if v.Likes == 1 {
		noun = "like"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s) (%d %s)\n", v.Layout.Name, v.Author, v.Likes, noun)
	sb.WriteString(Matrix(v.Layout))
	sb.WriteString("\n")
	if v.Stat != nil {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s:\n", strings.ToUpper(v.Corpus))
		sb.WriteString(Stats(v.Stat, v.Usage))
	}
	if v.Link != "" {
		sb.WriteString(v.Link)
		sb.WriteString("\n")
	}
	return sb.String()
}
