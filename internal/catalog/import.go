package catalog

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"cotador/internal/ingest"
	"cotador/internal/storage"
)

// ErrNoItems signals an import that produced zero valid items; the current
// catalog is left untouched.
var ErrNoItems = errors.New("catalog import produced no items")

// ImportService replaces the catalog from a workbook and keeps the sqlite
// snapshot in sync with the in-process store. Imports are serialized: only
// one writer may swap the catalog at a time.
type ImportService struct {
	mu    sync.Mutex
	store *Store
	db    *storage.DB
	log   zerolog.Logger
}

func NewImportService(store *Store, db *storage.DB, logger zerolog.Logger) *ImportService {
	return &ImportService{store: store, db: db, log: logger}
}

func (s *ImportService) ImportFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return s.Import(f)
}

// Import decodes, builds and swaps the whole catalog. On any failure the
// previous catalog stays in place.
func (s *ImportService) Import(r io.Reader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sections, err := ingest.DecodeWorkbook(r)
	if err != nil {
		return 0, err
	}

	items := BuildItems(sections)
	if len(items) == 0 {
		return 0, ErrNoItems
	}

	if err := s.db.ReplaceItems(items); err != nil {
		return 0, err
	}
	gen := s.store.Replace(items)

	_ = s.db.SetMetadata("catalog.last_import", time.Now().UTC().Format(time.RFC3339))
	s.log.Info().
		Int("items", len(items)).
		Int("components", len(sections.Components)).
		Int("covers", len(sections.Covers)).
		Uint64("generation", gen).
		Msg("catalog replaced")

	return len(items), nil
}

// Reset empties both the store and the persisted snapshot.
func (s *ImportService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.ClearItems(); err != nil {
		return err
	}
	gen := s.store.Clear()
	s.log.Info().Uint64("generation", gen).Msg("catalog cleared")
	return nil
}

// LoadSnapshot hydrates the store from the persisted snapshot at startup.
// A missing snapshot just means an empty catalog.
func (s *ImportService) LoadSnapshot() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.db.ListItems()
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	s.store.Replace(items)
	return len(items), nil
}
