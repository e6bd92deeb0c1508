package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
)

// FileName is the settings file created in the user's config directory.
const FileName = "wait-trivia_config.json"

// ErrPersist wraps failures to write the settings file.
var ErrPersist = errors.New("persist settings")

// Options configures a Store.
type Options struct {
	// Catalog supplies the known difficulty and category tags.
	Catalog *catalog.Catalog

	// Logger receives load/write diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// Store holds the current settings in memory and mirrors them to a JSON file.
// It assumes a single writer; concurrent processes overwrite each other.
type Store struct {
	mu        sync.Mutex
	path      string
	data      Settings
	catalog   *catalog.Catalog
	logger    *slog.Logger
	writeFile func(path string, data []byte) error
}

// Open loads the settings file at path. A missing or blank file is replaced by
// the defaults; an unreadable or invalid one is logged and the defaults are
// used without touching the file. Open never fails.
func Open(path string, opts Options) *Store {
	s := newStore(path, opts)
	s.load()
	return s
}

func newStore(path string, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.MustLoad()
	}
	return &Store{
		path:      path,
		data:      Defaults(),
		catalog:   cat,
		logger:    logger.With("component", "store"),
		writeFile: writeFileAtomic,
	}
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist) || (err == nil && len(bytes.TrimSpace(raw)) == 0):
		s.data = Defaults()
		if err := s.save(); err != nil {
			s.logger.Warn("could not write default settings", "path", s.path, "error", err)
			return
		}
		s.logger.Info("created settings file", "path", s.path)
		return
	case err != nil:
		s.logger.Error("error reading settings, using defaults", "path", s.path, "error", err)
		s.data = Defaults()
		return
	}

	loaded, err := decode(raw)
	if err != nil {
		s.logger.Error("error reading settings, using defaults", "path", s.path, "error", err)
		s.data = Defaults()
		return
	}
	s.data = s.normalize(loaded)
	s.logger.Debug("loaded settings", "path", s.path,
		"difficulties", s.data.Difficulties, "categories", s.data.Categories, "limit", s.data.Limit)
}

// normalize drops tags the catalog does not know about.
func (s *Store) normalize(in Settings) Settings {
	out := Settings{Limit: in.Limit}
	for _, d := range cloneTags(in.Difficulties) {
		if s.catalog.HasDifficulty(d) {
			out.Difficulties = append(out.Difficulties, d)
		} else {
			s.logger.Warn("ignoring unknown difficulty", "difficulty", d)
		}
	}
	for _, c := range cloneTags(in.Categories) {
		if s.catalog.HasCategory(c) {
			out.Categories = append(out.Categories, c)
		} else {
			s.logger.Warn("ignoring unknown category", "category", c)
		}
	}
	return out.clone()
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns a copy of the current settings with the limit defaulted.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.data.clone()
	if out.Limit == 0 {
		out.Limit = DefaultLimit
	}
	return out
}

// Difficulties returns the allowed difficulties; empty means all.
func (s *Store) Difficulties() []string {
	return s.Get().Difficulties
}

// Categories returns the allowed categories; empty means all.
func (s *Store) Categories() []string {
	return s.Get().Categories
}

// Limit returns the question count per game.
func (s *Store) Limit() int {
	return s.Get().Limit
}

// SetBatch applies every key in p and persists the result. Either all keys
// are kept or, if validation or the write fails, none are.
func (s *Store) SetBatch(p Patch) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.data.clone()
	if p.Difficulties != nil {
		s.data.Difficulties = cloneTags(*p.Difficulties)
	}
	if p.Categories != nil {
		s.data.Categories = cloneTags(*p.Categories)
	}
	if p.Limit != nil {
		s.data.Limit = *p.Limit
	}

	if err := s.save(); err != nil {
		s.data = previous
		s.logger.Error("settings update failed, rolled back", "path", s.path, "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("settings updated", "path", s.path)
	return nil
}

func (s *Store) validate(p Patch) error {
	if p.Difficulties != nil {
		for _, d := range *p.Difficulties {
			if !s.catalog.HasDifficulty(d) {
				return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, d)
			}
		}
	}
	if p.Categories != nil {
		for _, c := range *p.Categories {
			if !s.catalog.HasCategory(c) {
				return fmt.Errorf("%w: unknown category %q", ErrInvalidSettings, c)
			}
		}
	}
	if p.Limit != nil {
		return checkLimit(*p.Limit)
	}
	return nil
}

// save writes the in-memory settings. Callers hold mu or own s exclusively.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data.clone(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.writeFile(s.path, append(data, '\n'))
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place so a crash never leaves a half-written settings file.
func writeFileAtomic(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".wait-trivia-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// DefaultPath resolves the settings file location:
// 1. %APPDATA% on Windows
// 2. $XDG_CONFIG_HOME
// 3. ~/.config
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

func configDir() (string, error) {
	if runtime.GOOS == "windows" {
		if d := os.Getenv("APPDATA"); d != "" {
			return d, nil
		}
	}
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
