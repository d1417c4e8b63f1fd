// Package inputs reads puzzle inputs from the local inputs directory and
// downloads missing ones from the puzzle site.
package inputs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/harrison/aoc/internal/filelock"
)

// ErrInputNotFound is returned when no input file exists for a day.
var ErrInputNotFound = errors.New("input not found")

// Store is a directory of inputs named <year>-<dd>.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the file an input for (year, day) lives in.
func (s *Store) Path(year, day int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%d-%02d", year, day))
}

// Exists reports whether an input file is present for (year, day).
func (s *Store) Exists(year, day int) bool {
	_, err := os.Stat(s.Path(year, day))
	return err == nil
}

// Read returns the input for (year, day) with trailing whitespace trimmed.
func (s *Store) Read(year, day int) (string, error) {
	path := s.Path(year, day)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: failed to read input from %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input from %s: %w", path, err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

// Save stores data as the input for (year, day). Concurrent writers of the
// same day are serialized and readers never see a partial file. The lock file
// is removed afterwards so the inputs directory only holds inputs.
func (s *Store) Save(year, day int, data []byte) error {
	path := s.Path(year, day)
	if err := filelock.LockAndWrite(path, data, 0600); err != nil {
		return fmt.Errorf("save input %d-%02d: %w", year, day, err)
	}
	os.Remove(path + ".lock")
	return nil
}
