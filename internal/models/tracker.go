// Package models holds the tracker domain types shared by the store, the
// board engine and the user interfaces.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryTitle is the sentinel category trackers fall back to when
// no category is given or their category is deleted.
const DefaultCategoryTitle = "Uncategorized"

// Tracker is one habit being tracked.
type Tracker struct {
	ID       uuid.UUID
	Title    string
	Color    string // RRGGBB, uppercase, no leading #
	Emoji    string
	Schedule Schedule
}

// TrackerCategory groups trackers under a unique title. Trackers holds the
// members in (title, id) order when loaded from the store.
type TrackerCategory struct {
	ID       uuid.UUID
	Title    string
	Trackers []Tracker
}

// TrackerRecord marks one tracker completed on one calendar day. Date is
// always local midnight.
type TrackerRecord struct {
	TrackerID uuid.UUID
	Date      time.Time
}

// NewTrackerRecord builds a record for the calendar day containing t.
func NewTrackerRecord(trackerID uuid.UUID, t time.Time) TrackerRecord {
	return TrackerRecord{TrackerID: trackerID, Date: StartOfDay(t)}
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NormalizeHexColor validates a RRGGBB color, with or without a leading #,
// and returns it uppercased without the #.
func NormalizeHexColor(s string) (string, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return "", fmt.Errorf("invalid color %q (expected RRGGBB)", s)
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return "", fmt.Errorf("invalid color %q (expected RRGGBB)", s)
		}
	}
	return strings.ToUpper(s), nil
}
