package tui

import (
	"fmt"
	"strings"

	"github.com/dkrivenko/trackerd/internal/board"
)

func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Trackers • %s  [%s]", m.snapshot.Date.Format("Mon 2006-01-02"), m.mode)
	b.WriteString(headerStyle.Render(header) + "\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	switch m.snapshot.Empty {
	case board.EmptyNoneScheduled:
		b.WriteString(mutedStyle.Render("What shall we track?") + "\n")
	case board.EmptyNoMatches:
		b.WriteString(mutedStyle.Render("Nothing found") + "\n")
	default:
		idx := 0
		for _, section := range m.snapshot.Sections {
			b.WriteString(sectionStyle.Render(section.Title) + "\n")
			for _, item := range section.Items {
				mark := "[ ]"
				if item.Completed {
					mark = "[x]"
				}
				line := fmt.Sprintf("%s %s %s  %d days", mark, item.Tracker.Emoji, item.Tracker.Title, item.CompletedCount)
				switch {
				case idx == m.cursor:
					line = selectedStyle.Render(line)
				case item.Completed:
					line = completedStyle.Render(line)
				}
				b.WriteString("  " + line + "\n")
				idx++
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status) + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total completed: %d", m.total)) + "\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
