package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkrivenko/trackerd/internal/board"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type BoardCmd struct {
	Date   string `help:"Reference day in YYYY-MM-DD format (default: today)." default:""`
	Filter string `short:"f" help:"Filter mode (all|today|completed|uncompleted)." default:"all"`
	Search string `short:"s" help:"Case-insensitive title substring."`
}

func (c *BoardCmd) Run(ctx *Context) error {
	mode := board.Mode(c.Filter)
	if !mode.Valid() {
		return fmt.Errorf("invalid filter mode: %s", c.Filter)
	}

	date, err := ParseDate(c.Date)
	if err != nil {
		return err
	}
	if mode == board.ModeToday {
		// Selecting the today filter snaps the reference date back to now.
		date, _ = ParseDate("")
	}

	categories, err := ctx.Store.Categories().FetchAll()
	if err != nil {
		return err
	}
	records, err := ctx.Store.Records().FetchAll()
	if err != nil {
		return err
	}

	snapshot := board.Build(categories, records, date, c.Search, mode)
	fmt.Print(RenderBoard(snapshot))
	return nil
}

// RenderBoard formats a board snapshot for terminal output.
func RenderBoard(s board.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", sectionStyle.Render(s.Date.Format("Monday, 2006-01-02")))

	switch s.Empty {
	case board.EmptyNoneScheduled:
		b.WriteString(mutedStyle.Render("Nothing to track today.") + "\n")
		return b.String()
	case board.EmptyNoMatches:
		b.WriteString(mutedStyle.Render("Nothing found for this search or filter.") + "\n")
		return b.String()
	}

	for _, section := range s.Sections {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render(section.Title))
		for _, item := range section.Items {
			mark := "[ ]"
			line := fmt.Sprintf("%s %s %s  %d days", mark, item.Tracker.Emoji, item.Tracker.Title, item.CompletedCount)
			if item.Completed {
				mark = "[x]"
				line = doneStyle.Render(fmt.Sprintf("%s %s %s  %d days", mark, item.Tracker.Emoji, item.Tracker.Title, item.CompletedCount))
			}
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}
