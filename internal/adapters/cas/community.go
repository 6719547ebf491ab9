package cas

import (
	"go.trai.ch/cmini/internal/core/domain"
)

// LoadCommunity reads the likes, authors, links and corpus preference files.
// Missing files yield empty tables.
func (s *Store) LoadCommunity() (*domain.Community, error) {
	c := domain.NewCommunity()
	if err := s.readJSON(domain.LikesFileName, &c.Likes); err != nil {
		return nil, err
	}
	if err := s.readJSON(domain.AuthorsFileName, &c.Authors); err != nil {
		return nil, err
	}
	if err := s.readJSON(domain.LinksFileName, &c.Links); err != nil {
		return nil, err
	}
	if err := s.readJSON(domain.CorpusPrefsFileName, &c.CorpusPrefs); err != nil {
		return nil, err
	}

	// A document holding null decodes to a nil map.
	empty := domain.NewCommunity()
	if c.Likes == nil {
		c.Likes = empty.Likes
	}
	if c.Authors == nil {
		c.Authors = empty.Authors
	}
	if c.Links == nil {
		c.Links = empty.Links
	}
	if c.CorpusPrefs == nil {
		c.CorpusPrefs = empty.CorpusPrefs
	}
	return c, nil
}

// SaveCommunity writes each community table to its own file.
func (s *Store) SaveCommunity(c *domain.Community) error {
	if err := s.writeJSON(domain.LikesFileName, c.Likes); err != nil {
		return err
	}
	if err := s.writeJSON(domain.AuthorsFileName, c.Authors); err != nil {
		return err
	}
	if err := s.writeJSON(domain.LinksFileName, c.Links); err != nil {
		return err
	}
	return s.writeJSON(domain.CorpusPrefsFileName, c.CorpusPrefs)
}
