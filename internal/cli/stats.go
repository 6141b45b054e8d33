package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	total, err := ctx.Store.Records().TotalCompletedCount()
	if err != nil {
		return err
	}
	fmt.Printf("Trackers completed: %d\n", total)
	return nil
}
