package trackers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/cli"
	"github.com/dkrivenko/trackerd/internal/models"
)

type TrackerEditCmd struct {
	Tracker  string `arg:"" help:"Tracker title or id."`
	Title    string `short:"t" help:"New title." default:""`
	Emoji    string `short:"e" help:"New emoji." default:""`
	Color    string `short:"c" help:"New hex color (RRGGBB)." default:""`
	Category string `short:"C" help:"New category title." default:""`
	Days     string `short:"d" help:"New weekdays (e.g. mon,wed,fri or 'daily')." default:""`
}

func (c *TrackerEditCmd) Run(ctx *cli.Context) error {
	tracker, err := cli.ResolveTracker(ctx, c.Tracker)
	if err != nil {
		return err
	}

	// The edit form semantics: every field is overwritten, so unset flags
	// keep the current value.
	if c.Title != "" {
		tracker.Title = c.Title
	}
	if c.Emoji != "" {
		tracker.Emoji = c.Emoji
	}
	if c.Color != "" {
		color, err := models.NormalizeHexColor(c.Color)
		if err != nil {
			return err
		}
		tracker.Color = color
	}
	if c.Days != "" {
		schedule, err := cli.ParseSchedule(c.Days)
		if err != nil {
			return err
		}
		tracker.Schedule = schedule
	}

	category := c.Category
	if category == "" {
		category, err = currentCategoryTitle(ctx, tracker.ID)
		if err != nil {
			return err
		}
	}

	if err := ctx.Store.Trackers().Update(tracker, category); err != nil {
		return err
	}

	fmt.Printf("Updated tracker: %s\n", tracker.Title)
	return nil
}

func currentCategoryTitle(ctx *cli.Context, trackerID uuid.UUID) (string, error) {
	categories, err := ctx.Store.Categories().FetchAll()
	if err != nil {
		return "", err
	}
	for _, cat := range categories {
		for _, t := range cat.Trackers {
			if t.ID == trackerID {
				return cat.Title, nil
			}
		}
	}
	return models.DefaultCategoryTitle, nil
}
