package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/backup"
	"github.com/dkrivenko/trackerd/internal/constants"
	"github.com/dkrivenko/trackerd/internal/logger"
	"github.com/dkrivenko/trackerd/internal/models"
	"github.com/dkrivenko/trackerd/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.Path())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseSchedule parses a comma-separated weekday list ("mon,wed,fri"),
// "daily"/"everyday" for all seven days, or numbers 1-7 (1=Sunday).
func ParseSchedule(s string) (models.Schedule, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, nil
	}
	if s == "daily" || s == "everyday" {
		return models.EveryDay(), nil
	}

	var days []models.Weekday
	for _, part := range strings.Split(s, ",") {
		w, err := models.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, w)
	}
	return models.NewSchedule(days...)
}

// ParseDate parses a YYYY-MM-DD flag value; empty means today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ResolveTracker finds a tracker by id or by exact title. A title matching
// more than one tracker is rejected rather than guessed at.
func ResolveTracker(ctx *Context, ref string) (models.Tracker, error) {
	trackers, err := ctx.Store.Trackers().FetchAll()
	if err != nil {
		return models.Tracker{}, err
	}

	if id, err := uuid.Parse(ref); err == nil {
		for _, t := range trackers {
			if t.ID == id {
				return t, nil
			}
		}
		return models.Tracker{}, fmt.Errorf("no tracker with id %s", ref)
	}

	var matches []models.Tracker
	for _, t := range trackers {
		if t.Title == ref {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Tracker{}, fmt.Errorf("no tracker named %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Tracker{}, fmt.Errorf("%d trackers named %q, use the id instead", len(matches), ref)
	}
}
