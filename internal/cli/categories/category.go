package categories

import (
	"fmt"

	"github.com/dkrivenko/trackerd/internal/cli"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Create a category."`
	List   CategoryListCmd   `cmd:"" help:"List categories and their trackers."`
	Rename CategoryRenameCmd `cmd:"" help:"Rename a category."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category (its trackers survive)."`
}

type CategoryAddCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Categories().Create(c.Title); err != nil {
		return err
	}
	fmt.Printf("Category ready: %s\n", c.Title)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	categories, err := ctx.Store.Categories().FetchAll()
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	for _, cat := range categories {
		fmt.Printf("%s (%d trackers)\n", cat.Title, len(cat.Trackers))
		for _, t := range cat.Trackers {
			fmt.Printf("  %s %s\n", t.Emoji, t.Title)
		}
	}
	return nil
}

type CategoryRenameCmd struct {
	OldTitle string `arg:"" help:"Current title."`
	NewTitle string `arg:"" help:"New title."`
}

func (c *CategoryRenameCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Categories().Rename(c.OldTitle, c.NewTitle); err != nil {
		return err
	}
	fmt.Printf("Renamed category %q to %q\n", c.OldTitle, c.NewTitle)
	return nil
}

type CategoryDeleteCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Categories().Delete(c.Title); err != nil {
		return err
	}
	fmt.Printf("Deleted category: %s\n", c.Title)
	return nil
}
