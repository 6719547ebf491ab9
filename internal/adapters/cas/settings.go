package cas

import "go.trai.ch/cmini/internal/core/domain"

type settingsRecord struct {
	Maintenance bool `json:"maintenance"`
}

// LoadSettings reads the settings file. A missing file yields zero settings.
func (s *Store) LoadSettings() (*domain.Settings, error) {
	var rec settingsRecord
	if err := s.readJSON(domain.SettingsFileName, &rec); err != nil {
		return nil, err
	}
	return &domain.Settings{Maintenance: rec.Maintenance}, nil
}

// SaveSettings writes the settings file.
func (s *Store) SaveSettings(settings *domain.Settings) error {
	return s.writeJSON(domain.SettingsFileName, settingsRecord{Maintenance: settings.Maintenance})
}
