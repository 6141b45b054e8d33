package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSchedule(t *testing.T, days ...models.Weekday) models.Schedule {
	t.Helper()
	s, err := models.NewSchedule(days...)
	if err != nil {
		t.Fatalf("failed to build schedule: %v", err)
	}
	return s
}

func newTracker(t *testing.T, title string, days ...models.Weekday) models.Tracker {
	t.Helper()
	schedule := models.EveryDay()
	if len(days) > 0 {
		schedule = mustSchedule(t, days...)
	}
	return models.Tracker{
		ID:       uuid.New(),
		Title:    title,
		Color:    "FD4C49",
		Emoji:    "🙂",
		Schedule: schedule,
	}
}

// mondayNoon is 2025-06-02 12:00 local, a Monday.
func mondayNoon() time.Time {
	return time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)
}

func TestInitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	if err := store.runMigrations(); err != nil {
		t.Fatalf("re-running migrations should be a no-op: %v", err)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load should fail when storage was never initialized")
	}
}

func TestChangeNotifications(t *testing.T) {
	store := setupTestStore(t)

	var trackerEvents, categoryEvents, recordEvents int
	store.Trackers().OnChange(func() { trackerEvents++ })
	store.Categories().OnChange(func() { categoryEvents++ })
	store.Records().OnChange(func() { recordEvents++ })

	tracker := newTracker(t, "Run")
	if err := store.Trackers().Create(tracker, "Health"); err != nil {
		t.Fatalf("failed to create tracker: %v", err)
	}
	if trackerEvents != 1 || categoryEvents != 1 {
		t.Errorf("create should notify trackers and categories once, got %d/%d", trackerEvents, categoryEvents)
	}
	if recordEvents != 0 {
		t.Errorf("create should not notify record observers, got %d", recordEvents)
	}

	rec := models.NewTrackerRecord(tracker.ID, mondayNoon())
	if err := store.Records().Add(rec); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}
	if recordEvents != 1 {
		t.Errorf("add should notify record observers once, got %d", recordEvents)
	}

	// A duplicate add commits nothing, so no notification fires.
	if err := store.Records().Add(rec); err != nil {
		t.Fatalf("duplicate add should not error: %v", err)
	}
	if recordEvents != 1 {
		t.Errorf("no-op add should stay silent, got %d events", recordEvents)
	}

	// Failed mutations never notify.
	trackerEvents = 0
	missing := newTracker(t, "Ghost")
	if err := store.Trackers().Update(missing, "Health"); err == nil {
		t.Fatal("update of a missing tracker should fail")
	}
	if trackerEvents != 0 {
		t.Errorf("failed update must not notify, got %d events", trackerEvents)
	}
}
