package trackers

import (
	"fmt"

	"github.com/dkrivenko/trackerd/internal/cli"
)

type TrackerDeleteCmd struct {
	Tracker string `arg:"" help:"Tracker title or id."`
}

func (c *TrackerDeleteCmd) Run(ctx *cli.Context) error {
	tracker, err := cli.ResolveTracker(ctx, c.Tracker)
	if err != nil {
		return err
	}

	if err := ctx.Store.Trackers().Delete(tracker.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted tracker: %s (completion history removed)\n", tracker.Title)
	return nil
}
