package trackers

import (
	"fmt"

	"github.com/dkrivenko/trackerd/internal/cli"
)

type TrackerListCmd struct{}

func (c *TrackerListCmd) Run(ctx *cli.Context) error {
	categories, err := ctx.Store.Categories().FetchAll()
	if err != nil {
		return err
	}

	records := ctx.Store.Records()
	total := 0
	for _, cat := range categories {
		if len(cat.Trackers) == 0 {
			continue
		}
		fmt.Printf("%s\n", cat.Title)
		for _, t := range cat.Trackers {
			count, err := records.Count(t.ID)
			if err != nil {
				return err
			}
			fmt.Printf("  %s %s  [%s]  %d done  (%s)\n", t.Emoji, t.Title, t.Schedule, count, t.ID)
			total++
		}
	}

	if total == 0 {
		fmt.Println("No trackers yet. Add one with 'trackerd tracker add'.")
	}
	return nil
}
