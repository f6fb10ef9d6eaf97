package ui

import (
	"fmt"
	"strings"

	"github.com/DarwinAwardWinner/copytags/internal/tasks"
)

// Summary renders a batch summary as a styled block: a title line, one
// counter line, and a detail line for every pair that was not copied.
func Summary(s *tasks.BatchSummary) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(fmt.Sprintf("Processed %d files", len(s.Pairs))))
	b.WriteString("\n")
	b.WriteString(styles.ok.Render(fmt.Sprintf("%d copied", s.Copied)))
	b.WriteString("  ")
	b.WriteString(styles.warn.Render(fmt.Sprintf("%d skipped", s.Skipped)))
	b.WriteString("  ")
	b.WriteString(styles.err.Render(fmt.Sprintf("%d failed", s.Failed)))
	b.WriteString("\n")

	for _, pair := range s.Pairs {
		if pair.Status == tasks.PairCopied {
			continue
		}
		line := fmt.Sprintf("%s: %s", pair.Status, pair.Dest)
		if pair.Err != nil {
			line += fmt.Sprintf(" (%v)", pair.Err)
		}
		b.WriteString(styles.help.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
