package cas

import (
	"go.trai.ch/cmini/internal/codec"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

type layoutRecord struct {
	User  uint64 `json:"user"`
	Board string `json:"board"`
	Keys  string `json:"keys"`
}

// LoadLayouts reads layouts.json in document order. Any malformed record fails
// the whole load.
func (s *Store) LoadLayouts() ([]*domain.Layout, error) {
	data, err := s.read(domain.LayoutsFileName)
	if err != nil {
		return nil, err
	}
	records, err := decodeOrdered[layoutRecord](data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path(domain.LayoutsFileName))
	}

	layouts := make([]*domain.Layout, 0, len(records))
	for _, rec := range records {
		board, err := domain.ParseBoardShape(rec.Value.Board)
		if err != nil {
			return nil, zerr.With(err, "layout", rec.Key)
		}
		keys, err := codec.UnpackLayout(rec.Value.Keys)
		if err != nil {
			return nil, zerr.With(err, "layout", rec.Key)
		}
		layouts = append(layouts, codec.NewLayout(rec.Key, rec.Value.User, board, keys))
	}
	return layouts, nil
}

// SaveLayouts writes layouts.json preserving the slice order.
func (s *Store) SaveLayouts(layouts []*domain.Layout) error {
	records := make([]member[layoutRecord], 0, len(layouts))
	for _, l := range layouts {
		records = append(records, member[layoutRecord]{
			Key: l.Name,
			Value: layoutRecord{
				User:  l.Owner,
				Board: string(l.Board),
				Keys:  codec.PackLayout(l.Keys),
			},
		})
	}
	data, err := encodeOrdered(records)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", s.path(domain.LayoutsFileName))
	}
	return s.write(domain.LayoutsFileName, data)
}
