package lifefile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"toruslife/internal/pattern"
)

// SavedPrefix starts the names handed out by NextSavedName.
const SavedPrefix = "saved_game_"

// Store keeps saved boards under <dir>/saved and patterns under <dir>/configs.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. Nothing is created until the first
// write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Root returns the store's base directory.
func (s *Store) Root() string { return s.dir }

// Dir returns the directory files of the given kind live in.
func (s *Store) Dir(kind Kind) string {
	if kind == KindSaved {
		return filepath.Join(s.dir, "saved")
	}
	return filepath.Join(s.dir, "configs")
}

// Path returns the location of a named file of the given kind.
func (s *Store) Path(kind Kind, name string) string {
	return filepath.Join(s.Dir(kind), name)
}

// Write creates or truncates the named file and fills it with fn.
func (s *Store) Write(kind Kind, name string, fn func(io.Writer) error) (string, error) {
	dir := s.Dir(kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// List returns the sorted names of regular files of the given kind. A missing
// directory is an empty list.
func (s *Store) List(kind Kind) ([]string, error) {
	entries, err := os.ReadDir(s.Dir(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", s.Dir(kind), err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// NextSavedName returns saved_game_<n+1> where n is the largest numbered save
// already present.
func (s *Store) NextSavedName() (string, error) {
	names, err := s.List(KindSaved)
	if err != nil {
		return "", err
	}
	highest := 0
	for _, name := range names {
		if !strings.HasPrefix(name, SavedPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, SavedPrefix))
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return SavedPrefix + strconv.Itoa(highest+1), nil
}

// ReadFile parses the file at path, naming the document after its base name.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(filepath.Base(path), f)
}

// ImportFile parses a pattern file. Files that are not in a pattern dialect
// return (nil, nil).
func ImportFile(path string) (*pattern.Config, error) {
	doc, err := ReadFile(path)
	if err != nil || doc == nil || !doc.Kind.IsPattern() {
		return nil, err
	}
	return doc.Pattern(), nil
}

// ImportAll registers every pattern file in the configs directory and returns
// how many were registered. It stops at the first malformed file.
func (s *Store) ImportAll(lib *pattern.Library) (int, error) {
	names, err := s.List(KindConfigs)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, name := range names {
		cfg, err := ImportFile(s.Path(KindConfigs, name))
		if err != nil {
			return n, err
		}
		if cfg == nil {
			continue
		}
		lib.Register(cfg)
		n++
	}
	return n, nil
}
