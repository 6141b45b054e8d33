package board

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/models"
)

// monday is 2025-06-02, a Monday.
var monday = time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)

func makeTracker(t *testing.T, title string, days ...models.Weekday) models.Tracker {
	t.Helper()
	var schedule models.Schedule
	if len(days) == 0 {
		schedule = models.EveryDay()
	} else {
		var err error
		schedule, err = models.NewSchedule(days...)
		if err != nil {
			t.Fatalf("invalid schedule: %v", err)
		}
	}
	return models.Tracker{
		ID:       uuid.New(),
		Title:    title,
		Color:    "FF9500",
		Emoji:    "⭐",
		Schedule: schedule,
	}
}

func titles(s Snapshot) map[string][]string {
	out := make(map[string][]string)
	for _, sec := range s.Sections {
		for _, it := range sec.Items {
			out[sec.Title] = append(out[sec.Title], it.Tracker.Title)
		}
	}
	return out
}

func TestBuildFiltersBySchedule(t *testing.T) {
	monWed, err := models.NewSchedule(models.Monday, models.Wednesday)
	if err != nil {
		t.Fatalf("invalid schedule: %v", err)
	}
	tracker := makeTracker(t, "Gym")
	tracker.Schedule = monWed

	cats := []models.TrackerCategory{{Title: "Health", Trackers: []models.Tracker{tracker}}}

	got := Build(cats, nil, monday, "", ModeAll)
	if got.Empty != NotEmpty {
		t.Fatalf("tracker scheduled on Monday should be visible, empty reason %d", got.Empty)
	}
	if len(got.Sections) != 1 || got.Sections[0].Title != "Health" {
		t.Fatalf("unexpected sections: %+v", got.Sections)
	}

	tuesday := monday.AddDate(0, 0, 1)
	got = Build(cats, nil, tuesday, "", ModeAll)
	if len(got.Sections) != 0 {
		t.Errorf("tracker not scheduled on Tuesday should be hidden, got %+v", got.Sections)
	}
	if got.Empty != EmptyNoneScheduled {
		t.Errorf("expected EmptyNoneScheduled, got %d", got.Empty)
	}
}

func TestBuildCompletionState(t *testing.T) {
	water := makeTracker(t, "Drink water")
	read := makeTracker(t, "Read book")
	cats := []models.TrackerCategory{{Title: "Habits", Trackers: []models.Tracker{water, read}}}

	records := []models.TrackerRecord{
		models.NewTrackerRecord(water.ID, monday),
		models.NewTrackerRecord(water.ID, monday.AddDate(0, 0, -1)),
	}

	got := Build(cats, records, monday, "", ModeAll)
	if len(got.Sections) != 1 || len(got.Sections[0].Items) != 2 {
		t.Fatalf("unexpected board shape: %+v", got.Sections)
	}
	for _, item := range got.Sections[0].Items {
		switch item.Tracker.Title {
		case "Drink water":
			if !item.Completed {
				t.Error("Drink water should be completed on the reference date")
			}
			if item.CompletedCount != 2 {
				t.Errorf("Drink water count = %d, want 2", item.CompletedCount)
			}
		case "Read book":
			if item.Completed {
				t.Error("Read book should not be completed")
			}
			if item.CompletedCount != 0 {
				t.Errorf("Read book count = %d, want 0", item.CompletedCount)
			}
		}
	}
}

func TestBuildModeNarrowing(t *testing.T) {
	water := makeTracker(t, "Drink water")
	read := makeTracker(t, "Read book")
	cats := []models.TrackerCategory{{Title: "Habits", Trackers: []models.Tracker{water, read}}}
	records := []models.TrackerRecord{models.NewTrackerRecord(water.ID, monday)}

	completed := Build(cats, records, monday, "", ModeCompleted)
	if got := titles(completed)["Habits"]; len(got) != 1 || got[0] != "Drink water" {
		t.Errorf("completed mode: got %v, want [Drink water]", got)
	}

	uncompleted := Build(cats, records, monday, "", ModeUncompleted)
	if got := titles(uncompleted)["Habits"]; len(got) != 1 || got[0] != "Read book" {
		t.Errorf("uncompleted mode: got %v, want [Read book]", got)
	}

	// Today behaves like all; the date reset happens in the caller.
	today := Build(cats, records, monday, "", ModeToday)
	if got := titles(today)["Habits"]; len(got) != 2 {
		t.Errorf("today mode: got %v, want both trackers", got)
	}
}

func TestBuildSearch(t *testing.T) {
	water := makeTracker(t, "Drink water")
	read := makeTracker(t, "Read book")
	cats := []models.TrackerCategory{{Title: "Habits", Trackers: []models.Tracker{water, read}}}

	got := Build(cats, nil, monday, "WATER", ModeAll)
	if ts := titles(got)["Habits"]; len(ts) != 1 || ts[0] != "Drink water" {
		t.Errorf("case-insensitive search: got %v, want [Drink water]", ts)
	}

	got = Build(cats, nil, monday, "  water  ", ModeAll)
	if ts := titles(got)["Habits"]; len(ts) != 1 {
		t.Errorf("query should be trimmed, got %v", ts)
	}
}

func TestBuildSearchAndModeCompose(t *testing.T) {
	water := makeTracker(t, "Drink water")
	sparkling := makeTracker(t, "Sparkling water")
	cats := []models.TrackerCategory{{Title: "Habits", Trackers: []models.Tracker{water, sparkling}}}
	records := []models.TrackerRecord{models.NewTrackerRecord(water.ID, monday)}

	got := Build(cats, records, monday, "water", ModeUncompleted)
	if ts := titles(got)["Habits"]; len(ts) != 1 || ts[0] != "Sparkling water" {
		t.Errorf("search with uncompleted mode: got %v, want [Sparkling water]", ts)
	}
}

func TestBuildEmptyReasons(t *testing.T) {
	tracker := makeTracker(t, "Drink water")
	cats := []models.TrackerCategory{{Title: "Habits", Trackers: []models.Tracker{tracker}}}

	// Scheduled but the query matches nothing.
	got := Build(cats, nil, monday, "xyzzy", ModeAll)
	if got.Empty != EmptyNoMatches {
		t.Errorf("expected EmptyNoMatches, got %d", got.Empty)
	}

	// Nothing scheduled at all.
	got = Build(nil, nil, monday, "", ModeAll)
	if got.Empty != EmptyNoneScheduled {
		t.Errorf("expected EmptyNoneScheduled, got %d", got.Empty)
	}

	// Scheduled but filtered out by mode.
	got = Build(cats, nil, monday, "", ModeCompleted)
	if got.Empty != EmptyNoMatches {
		t.Errorf("expected EmptyNoMatches for mode filter, got %d", got.Empty)
	}
}

func TestBuildDropsEmptySections(t *testing.T) {
	gym := makeTracker(t, "Gym", models.Monday)
	walk := makeTracker(t, "Walk", models.Tuesday)
	cats := []models.TrackerCategory{
		{Title: "Health", Trackers: []models.Tracker{gym}},
		{Title: "Outside", Trackers: []models.Tracker{walk}},
	}

	got := Build(cats, nil, monday, "", ModeAll)
	if len(got.Sections) != 1 || got.Sections[0].Title != "Health" {
		t.Errorf("sections without visible trackers must be dropped, got %+v", got.Sections)
	}
}

func TestBuildPreservesCategoryOrder(t *testing.T) {
	cats := []models.TrackerCategory{
		{Title: "Art", Trackers: []models.Tracker{makeTracker(t, "Sketch")}},
		{Title: "Home", Trackers: []models.Tracker{makeTracker(t, "Water plants")}},
		{Title: "Zen", Trackers: []models.Tracker{makeTracker(t, "Meditate")}},
	}

	got := Build(cats, nil, monday, "", ModeAll)
	want := []string{"Art", "Home", "Zen"}
	if len(got.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(got.Sections))
	}
	for i, sec := range got.Sections {
		if sec.Title != want[i] {
			t.Errorf("section %d = %q, want %q", i, sec.Title, want[i])
		}
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range Modes {
		if !m.Valid() {
			t.Errorf("mode %q should be valid", m)
		}
	}
	if Mode("bogus").Valid() {
		t.Error("unknown mode should be invalid")
	}
}
