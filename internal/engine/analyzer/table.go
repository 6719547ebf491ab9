// Package analyzer classifies typed sequences and aggregates corpora into stats.
package analyzer

import (
	_ "embed"
	"io"
	"strings"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// TableSize is the number of slots addressed by three 4-bit finger codes.
const TableSize = 1 << 12

//go:embed table.yaml
var defaultTable []byte

// Table maps a packed finger triple to its metric.
type Table struct {
	entries [TableSize]domain.Metric
}

type tableFile struct {
	Combos map[string]string `yaml:"combos"`
}

// NewTable returns a table whose every slot is MetricUnknown.
func NewTable() *Table {
	t := &Table{}
	for i := range t.entries {
		t.entries[i] = domain.MetricUnknown
	}
	return t
}

// DefaultTable parses the built-in table covering every physical triple.
func DefaultTable() (*Table, error) {
	return ParseTable(defaultTable)
}

// LoadTable reads a YAML table resource.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML table. Any unknown finger or metric name fails the
// whole table.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	t := NewTable()
	for combo, name := range file.Combos {
		fingers, err := parseCombo(combo)
		if err != nil {
			return nil, err
		}
		metric, err := domain.ParseMetric(name)
		if err != nil {
			return nil, zerr.With(err, "combo", combo)
		}
		t.Set(fingers[0], fingers[1], fingers[2], metric)
	}
	return t, nil
}

func parseCombo(combo string) ([3]domain.Finger, error) {
	var out [3]domain.Finger
	parts := strings.Split(combo, "-")
	if len(parts) != len(out) {
		return out, zerr.With(domain.ErrComboMalformed, "combo", combo)
	}
	for i, part := range parts {
		f, err := domain.ParseFinger(part)
		if err != nil {
			return out, zerr.With(err, "combo", combo)
		}
		out[i] = f
	}
	return out, nil
}

// Key packs three finger codes into a table index.
func Key(f0, f1, f2 domain.Finger) uint16 {
	return uint16(f0&0xf)<<8 | uint16(f1&0xf)<<4 | uint16(f2&0xf)
}

// Set assigns a metric to a finger triple.
func (t *Table) Set(f0, f1, f2 domain.Finger, m domain.Metric) {
	t.entries[Key(f0, f1, f2)] = m
}

// Lookup returns the metric of a finger triple.
func (t *Table) Lookup(f0, f1, f2 domain.Finger) domain.Metric {
	return t.entries[Key(f0, f1, f2)]
}
