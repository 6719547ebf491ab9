package board

import (
	"strings"

	"go.trai.ch/cmini/internal/codec"
	"go.trai.ch/cmini/internal/core/domain"
)

// Build validates a submission and returns a checksummed layout. The name and
// matrix are lowercased before parsing.
func (p *Parser) Build(name string, owner uint64, matrix string) (*domain.Layout, error) {
	name = NormalizeName(name)
	if err := CheckName(name); err != nil {
		return nil, err
	}
	shape, keys, err := p.Parse(strings.ToLower(matrix))
	if err != nil {
		return nil, err
	}
	return codec.NewLayout(name, owner, shape, keys), nil
}
