// Package sqlite implements the tracker, category and record repositories
// over a local SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dkrivenko/trackerd/internal/logger"
	"github.com/dkrivenko/trackerd/internal/migration"
	"github.com/dkrivenko/trackerd/internal/storage"
	"github.com/dkrivenko/trackerd/migrations"
)

// Store owns the database connection shared by all three repositories.
// Repository operations are synchronous and may block on disk I/O. Writes
// are serialized by a single mutex; change callbacks run on the mutating
// goroutine, strictly after commit.
type Store struct {
	path string
	db   *sql.DB
	mu   sync.Mutex

	trackerObs  observerList
	categoryObs observerList
	recordObs   observerList
}

var _ storage.Provider = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trackerd init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.validateSchemaVersion()
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: sqlite serializes writers anyway, and a single
	// connection keeps the foreign_keys pragma in effect for every query.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Trackers() storage.TrackerRepository {
	return &trackerRepo{s: s}
}

func (s *Store) Categories() storage.CategoryRepository {
	return &categoryRepo{s: s}
}

func (s *Store) Records() storage.RecordRepository {
	return &recordRepo{s: s}
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(func(msg string) { logger.Info(msg) })
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

// withTx runs fn inside a transaction under the writer lock. The
// transaction is rolled back when fn fails, so a partial mutation is never
// observable.
func (s *Store) withTx(fn func(*sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
