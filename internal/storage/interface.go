package storage

import (
	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/models"
)

// TrackerRepository is the tracker CRUD contract consumed by the UI layer.
// Every mutation is transactional; registered change callbacks run
// synchronously on the mutating goroutine after a successful commit.
type TrackerRepository interface {
	// Create inserts a new tracker and links it to the category with the
	// given title, creating the category if it does not exist yet.
	Create(t models.Tracker, categoryTitle string) error
	// Update overwrites title, emoji, color and schedule of the tracker
	// with the same id. The category is re-linked only when categoryTitle
	// differs from the current one. Returns ErrNotFound if the tracker
	// does not exist.
	Update(t models.Tracker, categoryTitle string) error
	// Delete removes the tracker and all of its completion records.
	// Returns ErrNotFound if the tracker does not exist.
	Delete(id uuid.UUID) error
	// FetchAll returns every tracker sorted by (title, id). Rows that fail
	// to decode are skipped.
	FetchAll() ([]models.Tracker, error)
	OnChange(func())
}

// CategoryRepository manages tracker categories, unique by title.
type CategoryRepository interface {
	// FetchOrCreate returns the category with the exact title, creating an
	// empty one when absent. The returned category does not include
	// member trackers.
	FetchOrCreate(title string) (models.TrackerCategory, error)
	// Create is the explicit creation path; same upsert semantics as
	// FetchOrCreate.
	Create(title string) error
	// Rename changes a category title in place, preserving identity and
	// membership. A missing oldTitle is a logged no-op.
	Rename(oldTitle, newTitle string) error
	// Delete removes the category. Member trackers are re-linked to the
	// default category rather than deleted.
	Delete(title string) error
	// FetchAll returns all categories sorted by title, each populated with
	// its member trackers sorted by (title, id).
	FetchAll() ([]models.TrackerCategory, error)
	OnChange(func())
}

// RecordRepository manages completion records. The store guarantees at
// most one record per (tracker, day).
type RecordRepository interface {
	// Add inserts a completion record with the date normalized to start of
	// day. Adding for an unknown tracker or an already-recorded day is a
	// no-op.
	Add(r models.TrackerRecord) error
	// Delete removes the record matching (tracker, day) if present.
	Delete(r models.TrackerRecord) error
	// DeleteAll removes every record of a tracker.
	DeleteAll(trackerID uuid.UUID) error
	// Contains reports whether a record exists for (tracker, day).
	Contains(r models.TrackerRecord) (bool, error)
	// FetchAll returns every record; rows without an owning tracker are
	// skipped.
	FetchAll() ([]models.TrackerRecord, error)
	// Count returns the number of records for one tracker, all dates.
	Count(trackerID uuid.UUID) (int, error)
	// TotalCompletedCount returns the record count across all trackers.
	TotalCompletedCount() (int, error)
	OnChange(func())
}

// Provider bundles the repositories over one underlying store.
type Provider interface {
	Init() error
	Load() error
	Close() error
	Path() string

	Trackers() TrackerRepository
	Categories() CategoryRepository
	Records() RecordRepository
}
