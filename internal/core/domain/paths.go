package domain

import "path/filepath"

const (
	// LayoutsFileName is the name of the persisted layout store.
	LayoutsFileName = "layouts.json"

	// StatsFileName is the name of the persisted stat cache.
	StatsFileName = "cached_stats.json"

	// LikesFileName is the name of the persisted like records.
	LikesFileName = "likes.json"

	// AuthorsFileName is the name of the persisted author names.
	AuthorsFileName = "authors.json"

	// LinksFileName is the name of the persisted external links.
	LinksFileName = "links.json"

	// CorpusPrefsFileName is the name of the persisted corpus preferences.
	CorpusPrefsFileName = "corpora.json"

	// SettingsFileName is the name of the persisted process switches.
	SettingsFileName = "settings.json"

	// CorporaDirName is the name of the directory holding one subdirectory per corpus.
	CorporaDirName = "corpora"

	// TableFileName is the name of the metric table resource.
	TableFileName = "table.yaml"

	// ConfigFileName is the name of the application config file.
	ConfigFileName = "cmini.toml"

	// EnvFileName is the name of the optional environment override file.
	EnvFileName = ".env"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCorporaPath returns the corpora directory under dataDir.
func DefaultCorporaPath(dataDir string) string {
	return filepath.Join(dataDir, CorporaDirName)
}

// CorpusFilePath returns the path of the gram file of the given size for a corpus.
func CorpusFilePath(corporaDir, corpus string, size GramSize) string {
	return filepath.Join(corporaDir, corpus, size.FileName())
}
