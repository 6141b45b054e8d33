package system

import (
	"fmt"
	"os"

	"github.com/dkrivenko/trackerd/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := os.Remove(ctx.Store.Path()); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized storage at %s\n", ctx.Store.Path())
	return nil
}
