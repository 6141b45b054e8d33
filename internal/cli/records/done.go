package records

import (
	"fmt"
	"time"

	"github.com/dkrivenko/trackerd/internal/cli"
	"github.com/dkrivenko/trackerd/internal/models"
)

type DoneCmd struct {
	Tracker string `arg:"" help:"Tracker title or id."`
	Date    string `help:"Day in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	tracker, record, err := resolve(ctx, c.Tracker, c.Date)
	if err != nil {
		return err
	}

	// Completion can be browsed forward but never recorded in the future.
	if record.Date.After(models.StartOfDay(time.Now())) {
		return fmt.Errorf("cannot mark completion for a future date")
	}

	repo := ctx.Store.Records()
	done, err := repo.Contains(record)
	if err != nil {
		return err
	}
	if done {
		fmt.Printf("%s is already done on %s\n", tracker.Title, record.Date.Format("2006-01-02"))
		return nil
	}

	if err := repo.Add(record); err != nil {
		return err
	}
	fmt.Printf("Done: %s %s on %s\n", tracker.Emoji, tracker.Title, record.Date.Format("2006-01-02"))
	return nil
}

type UndoneCmd struct {
	Tracker string `arg:"" help:"Tracker title or id."`
	Date    string `help:"Day in YYYY-MM-DD format (default: today)." default:""`
}

func (c *UndoneCmd) Run(ctx *cli.Context) error {
	tracker, record, err := resolve(ctx, c.Tracker, c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.Records().Delete(record); err != nil {
		return err
	}
	fmt.Printf("Unmarked: %s on %s\n", tracker.Title, record.Date.Format("2006-01-02"))
	return nil
}

func resolve(ctx *cli.Context, ref, date string) (models.Tracker, models.TrackerRecord, error) {
	tracker, err := cli.ResolveTracker(ctx, ref)
	if err != nil {
		return models.Tracker{}, models.TrackerRecord{}, err
	}
	day, err := cli.ParseDate(date)
	if err != nil {
		return models.Tracker{}, models.TrackerRecord{}, err
	}
	return tracker, models.NewTrackerRecord(tracker.ID, day), nil
}
