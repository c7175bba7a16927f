package markdown

import (
	"strings"

	"github.com/estevam5s/docgen/internal/models"
)

// faqSection parses the free-text FAQ field with a small line-based
// state machine. A line starting with "P:" or "Q:" opens a question;
// the next "R:" or "A:" line becomes its answer and closes it again.
// Answer lines with no open question are dropped, as is anything that
// matches no marker. Questions may go unanswered.
func faqSection(sec models.Section) string {
	items := sec.Text("faq_items")
	if items == "" {
		return ""
	}

	out := []string{"## ❓ FAQ\n"}
	open := false
	questions := 0

	for _, line := range strings.Split(items, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "P:") || strings.HasPrefix(line, "Q:"):
			if questions > 0 {
				out = append(out, "")
			}
			out = append(out, "### "+strings.TrimSpace(line[2:]))
			open = true
			questions++
		case strings.HasPrefix(line, "R:") || strings.HasPrefix(line, "A:"):
			if open {
				out = append(out, strings.TrimSpace(line[2:]))
				open = false
			}
		}
	}

	if questions == 0 {
		return ""
	}
	return strings.Join(out, "\n")
}
