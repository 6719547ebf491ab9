package board

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

// MinNameLen is the shortest accepted layout name.
const MinNameLen = 3

// NormalizeName lowercases and trims a submitted layout name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CheckName validates a layout name.
func CheckName(name string) error {
	if strings.HasPrefix(name, "_") {
		return zerr.With(zerr.Wrap(domain.ErrInvalidName, "names cannot start with an underscore"), "name", name)
	}
	if utf8.RuneCountInString(name) < MinNameLen {
		return zerr.With(zerr.Wrap(domain.ErrInvalidName, "names must be at least 3 characters long"), "name", name)
	}
	for _, r := range name {
		if !nameCharAllowed(r) {
			return zerr.With(zerr.Wrap(domain.ErrInvalidName, "names cannot contain `"+string(r)+"`"), "name", name)
		}
	}
	return nil
}

func nameCharAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("_'-():~", r)
}
