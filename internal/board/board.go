// Package board derives the visible tracker list for one day from store
// snapshots: which trackers are scheduled, which are completed, and how the
// result should be explained when it is empty.
package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/constants"
	"github.com/dkrivenko/trackerd/internal/models"
)

// Mode narrows the board beyond schedule eligibility.
type Mode string

const (
	ModeAll         Mode = "all"
	ModeToday       Mode = "today"
	ModeCompleted   Mode = "completed"
	ModeUncompleted Mode = "uncompleted"
)

// Modes lists the selectable filter modes in display order.
var Modes = []Mode{ModeAll, ModeToday, ModeCompleted, ModeUncompleted}

func (m Mode) Valid() bool {
	switch m {
	case ModeAll, ModeToday, ModeCompleted, ModeUncompleted:
		return true
	}
	return false
}

// EmptyReason distinguishes the two empty-board outcomes: nothing is
// scheduled for the day at all, or trackers are scheduled but the
// search/filter combination matched none of them.
type EmptyReason int

const (
	NotEmpty EmptyReason = iota
	EmptyNoneScheduled
	EmptyNoMatches
)

// Item is one visible tracker with its completion state for the board's
// date and its all-time completion count.
type Item struct {
	Tracker        models.Tracker
	Completed      bool
	CompletedCount int
}

// Section groups visible trackers under their category title.
type Section struct {
	Title string
	Items []Item
}

// Snapshot is the projected board for one reference date.
type Snapshot struct {
	Date     time.Time
	Sections []Section
	Empty    EmptyReason
}

// Build projects categories and records onto a board for the given date,
// query and mode. Categories are expected in title order with member
// trackers in (title, id) order, as the repositories return them; that
// order is preserved. Mode today behaves like all: resetting the reference
// date to now is the caller's concern.
func Build(categories []models.TrackerCategory, records []models.TrackerRecord, date time.Time, query string, mode Mode) Snapshot {
	day := models.StartOfDay(date)
	dayKey := day.Format(constants.DateFormat)
	query = strings.TrimSpace(query)

	completedOn := make(map[uuid.UUID]bool)
	counts := make(map[uuid.UUID]int)
	for _, r := range records {
		counts[r.TrackerID]++
		if models.StartOfDay(r.Date).Format(constants.DateFormat) == dayKey {
			completedOn[r.TrackerID] = true
		}
	}

	snapshot := Snapshot{Date: day}
	anyScheduled := false

	for _, cat := range categories {
		var items []Item
		for _, t := range cat.Trackers {
			if !t.Schedule.EligibleOn(day) {
				continue
			}
			anyScheduled = true

			done := completedOn[t.ID]
			switch mode {
			case ModeCompleted:
				if !done {
					continue
				}
			case ModeUncompleted:
				if done {
					continue
				}
			}

			if query != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(query)) {
				continue
			}

			items = append(items, Item{
				Tracker:        t,
				Completed:      done,
				CompletedCount: counts[t.ID],
			})
		}
		if len(items) > 0 {
			snapshot.Sections = append(snapshot.Sections, Section{Title: cat.Title, Items: items})
		}
	}

	if len(snapshot.Sections) == 0 {
		if anyScheduled {
			snapshot.Empty = EmptyNoMatches
		} else {
			snapshot.Empty = EmptyNoneScheduled
		}
	}

	return snapshot
}
