package config

// fileConfig mirrors cmini.toml. Pointer fields distinguish unset keys from zero values.
type fileConfig struct {
	DataDir        *string  `toml:"data_dir"`
	CorporaDir     *string  `toml:"corpora_dir"`
	Table          *string  `toml:"table"`
	DefaultCorpus  *string  `toml:"default_corpus"`
	Workers        *int     `toml:"workers"`
	Privileged     []uint64 `toml:"privileged"`
	FreeChar       *string  `toml:"free_char"`
	FindCacheSize  *int     `toml:"find_cache_size"`
	ResyncInterval *string  `toml:"resync_interval"`
	JSONLogs       *bool    `toml:"json_logs"`
	Telemetry      *string  `toml:"telemetry"`
}
