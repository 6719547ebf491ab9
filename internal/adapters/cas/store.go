// Package cas implements the JSON file stores for layouts, the stat cache and
// community records.
package cas

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LayoutStore, ports.StatStore and ports.CommunityStore
// with one JSON document per table inside a data directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// read returns the file contents, or nil when the file does not exist.
func (s *Store) read(name string) ([]byte, error) {
	p := s.path(name)
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", p)
	}
	return data, nil
}

// write replaces the file in one rename so readers never see a partial document.
func (s *Store) write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.dir)
	}

	p := s.path(name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", p)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", p)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", p)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", p)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", p)
	}
	return nil
}

func (s *Store) readJSON(name string, v any) error {
	data, err := s.read(name)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path(name))
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", s.path(name))
	}
	return s.write(name, append(data, '\n'))
}

// member is one key/value pair of a JSON object whose key order matters.
type member[T any] struct {
	Key   string
	Value T
}

// decodeOrdered decodes a JSON object keeping its members in document order.
func decodeOrdered[T any](data []byte) ([]member[T], error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var members []member[T]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, zerr.With(zerr.New("expected object key"), "token", tok)
		}
		var value T
		if err := dec.Decode(&value); err != nil {
			return nil, zerr.With(err, "key", key)
		}
		members = append(members, member[T]{Key: key, Value: value})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return members, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return zerr.With(zerr.New("unexpected token"), "want", want.String())
	}
	return nil
}

// encodeOrdered encodes members as an indented JSON object in slice order.
func encodeOrdered[T any](members []member[T]) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
