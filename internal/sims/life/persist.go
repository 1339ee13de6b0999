package life

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"toruslife/internal/core"
	"toruslife/internal/lifefile"
	"toruslife/internal/pattern"
)

// ErrNoStore is returned by operations that need a file store when the
// session was created without one.
var ErrNoStore = errors.New("life: session has no file store")

// Load replaces the board with a #saved file. Files with any other header are
// ignored and leave the session untouched.
func (s *Session) Load(path string) error {
	doc, err := lifefile.ReadFile(path)
	if err != nil {
		return err
	}
	return s.apply(doc)
}

// LoadFrom is Load for an already open file.
func (s *Session) LoadFrom(name string, r io.Reader) error {
	doc, err := lifefile.Parse(name, r)
	if err != nil {
		return err
	}
	return s.apply(doc)
}

func (s *Session) apply(doc *lifefile.Document) error {
	if doc == nil || doc.Kind != lifefile.KindSaved {
		return nil
	}
	for _, c := range doc.Coords {
		if c.Row < 0 || c.Row >= doc.Rows || c.Col < 0 || c.Col >= doc.Cols {
			return &lifefile.ParseError{
				Name: doc.Name,
				Line: 3,
				Msg:  fmt.Sprintf("cell %d,%d outside %dx%d board", c.Row, c.Col, doc.Rows, doc.Cols),
			}
		}
	}
	s.SetDimension(doc.Rows, doc.Cols)
	s.Clear()
	s.resetSelection()
	for _, c := range doc.Coords {
		s.grid.SetAlive(c.Row, c.Col, true)
	}
	s.generation = 0
	s.logger.Printf("loaded saved game: %s", doc.Name)
	return nil
}

// Save writes the board to the store. Kind saved writes the whole board;
// kind configs writes the live cells as a normalized pattern and registers it
// under name. An empty name for a saved board picks the next saved_game_N.
func (s *Session) Save(name string, kind lifefile.Kind) (string, error) {
	if s.store == nil {
		return "", ErrNoStore
	}
	var write func(io.Writer, *core.Grid) error
	switch kind {
	case lifefile.KindSaved:
		write = lifefile.WriteSaved
		if name == "" {
			next, err := s.store.NextSavedName()
			if err != nil {
				return "", err
			}
			name = next
		}
	case lifefile.KindConfigs:
		write = lifefile.WriteConfig
	default:
		return "", fmt.Errorf("life: cannot save as %q", kind)
	}
	if name == "" {
		return "", fmt.Errorf("life: empty %s name", kind)
	}

	var buf bytes.Buffer
	if err := write(&buf, s.grid); err != nil {
		return "", err
	}
	path, err := s.store.Write(kind, name, func(w io.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	})
	if err != nil {
		return "", err
	}
	if kind == lifefile.KindConfigs {
		doc, err := lifefile.Parse(name, &buf)
		if err != nil {
			return path, err
		}
		s.library.Register(doc.Pattern())
	}
	s.logger.Printf("saved: %s", name)
	return path, nil
}

// NextSaveName suggests a name for the next saved board.
func (s *Session) NextSaveName() (string, error) {
	if s.store == nil {
		return "", ErrNoStore
	}
	return s.store.NextSavedName()
}

// ImportConfig registers the pattern in the file at path. Files that are not
// in a pattern dialect are ignored.
func (s *Session) ImportConfig(path string) error {
	cfg, err := lifefile.ImportFile(path)
	if err != nil || cfg == nil {
		return err
	}
	s.Register(cfg)
	return nil
}

// ImportAll registers every pattern in the store's configs directory.
func (s *Session) ImportAll() (int, error) {
	if s.store == nil {
		return 0, ErrNoStore
	}
	return s.store.ImportAll(s.library)
}

// Register adds a pattern to the library, for example one delivered by a
// lifefile.Watcher.
func (s *Session) Register(cfg *pattern.Config) {
	if cfg == nil {
		return
	}
	s.library.Register(cfg)
	s.logger.Printf("loaded config: %s", cfg.Name)
}

// SavedGames lists the boards in the store's saved directory.
func (s *Session) SavedGames() ([]string, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.List(lifefile.KindSaved)
}

// LoadSaved loads a board from the store's saved directory by name.
func (s *Session) LoadSaved(name string) error {
	if s.store == nil {
		return ErrNoStore
	}
	return s.Load(s.store.Path(lifefile.KindSaved, name))
}
