package trackers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/cli"
	"github.com/dkrivenko/trackerd/internal/constants"
	"github.com/dkrivenko/trackerd/internal/models"
)

type TrackerAddCmd struct {
	Title    string `arg:"" optional:"" help:"Tracker title. Omit to fill out the form interactively."`
	Emoji    string `short:"e" help:"Display emoji." default:"🙂"`
	Color    string `short:"c" help:"Hex color (RRGGBB)." default:"FD4C49"`
	Category string `short:"C" help:"Category title." default:""`
	Days     string `short:"d" help:"Weekdays (e.g. mon,wed,fri or 'daily')." default:"daily"`
}

func (c *TrackerAddCmd) Run(ctx *cli.Context) error {
	if c.Title == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("tracker title must not be empty")
	}

	schedule, err := cli.ParseSchedule(c.Days)
	if err != nil {
		return err
	}

	color, err := models.NormalizeHexColor(c.Color)
	if err != nil {
		return err
	}

	tracker := models.Tracker{
		ID:       uuid.New(),
		Title:    c.Title,
		Color:    color,
		Emoji:    c.Emoji,
		Schedule: schedule,
	}

	if err := ctx.Store.Trackers().Create(tracker, c.Category); err != nil {
		return err
	}

	category := c.Category
	if category == "" {
		category = models.DefaultCategoryTitle
	}
	fmt.Printf("Added tracker: %s %s in %q (ID: %s)\n", tracker.Emoji, tracker.Title, category, tracker.ID)
	return nil
}

func (c *TrackerAddCmd) promptForm() error {
	emojiOptions := make([]huh.Option[string], len(constants.Emojis))
	for i, e := range constants.Emojis {
		emojiOptions[i] = huh.NewOption(e, e)
	}
	colorOptions := make([]huh.Option[string], len(constants.Colors))
	for i, col := range constants.Colors {
		colorOptions[i] = huh.NewOption("#"+col, col)
	}

	var days []string
	dayOptions := make([]huh.Option[string], len(models.DisplayOrder))
	for i, w := range models.DisplayOrder {
		dayOptions[i] = huh.NewOption(w.String(), strings.ToLower(w.Short()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Description("Leave empty for "+models.DefaultCategoryTitle).
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Emoji").
				Options(emojiOptions...).
				Value(&c.Emoji),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&c.Color),
			huh.NewMultiSelect[string]().
				Title("Schedule").
				Options(dayOptions...).
				Value(&days),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if len(days) > 0 {
		c.Days = strings.Join(days, ",")
	}
	return nil
}
