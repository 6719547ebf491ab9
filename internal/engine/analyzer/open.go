package analyzer

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

// OpenTable loads the table at path. When the file is absent the built-in
// table is used, unless required is set.
func OpenTable(path string, required bool) (*Table, error) {
	//nolint:gosec // Path comes from the application config
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return DefaultTable()
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	t, err := LoadTable(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return t, nil
}
