package cas

import (
	"slices"
	"strings"

	"go.trai.ch/cmini/internal/codec"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

type statRecord struct {
	Sum   string            `json:"sum"`
	Stats map[string]string `json:"stats"`
}

// LoadStats reads cached_stats.json. Layout and corpus names are lowercased.
// A malformed checksum or packed stat fails the whole load.
func (s *Store) LoadStats() (map[string]*domain.CachedEntry, error) {
	data, err := s.read(domain.StatsFileName)
	if err != nil {
		return nil, err
	}
	records, err := decodeOrdered[statRecord](data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path(domain.StatsFileName))
	}

	entries := make(map[string]*domain.CachedEntry, len(records))
	for _, rec := range records {
		sum, err := codec.ParseChecksum(rec.Value.Sum)
		if err != nil {
			return nil, zerr.With(err, "layout", rec.Key)
		}
		entry := domain.NewCachedEntry(sum)
		for corpus, packed := range rec.Value.Stats {
			stat, err := codec.UnpackStat(packed)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "layout", rec.Key), "corpus", corpus)
			}
			entry.Stats[strings.ToLower(corpus)] = stat
		}
		entries[strings.ToLower(rec.Key)] = entry
	}
	return entries, nil
}

// SaveStats writes the whole cache in one file replacement, ordered by layout name.
func (s *Store) SaveStats(entries map[string]*domain.CachedEntry) error {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	records := make([]member[statRecord], 0, len(names))
	for _, name := range names {
		entry := entries[name]
		packed := make(map[string]string, len(entry.Stats))
		for corpus, stat := range entry.Stats {
			packed[corpus] = codec.PackStat(stat)
		}
		records = append(records, member[statRecord]{
			Key:   name,
			Value: statRecord{Sum: codec.FormatChecksum(entry.Checksum), Stats: packed},
		})
	}
	data, err := encodeOrdered(records)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", s.path(domain.StatsFileName))
	}
	return s.write(domain.StatsFileName, data)
}
