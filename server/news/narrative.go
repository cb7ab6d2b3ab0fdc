package news

import (
	"fmt"
	"strings"
)

// FormatNarrative renders retrieved records into a single plain-text block
// suitable as model input. Pure and deterministic.
func FormatNarrative(records []Record) string {
	if len(records) == 0 {
		return "No recent news articles found."
	}

	var b strings.Builder
	b.WriteString("Recent News Articles:\n\n")

	for i, record := range records {
		fmt.Fprintf(&b, "%d. %s\n", i+1, record.Title)
		fmt.Fprintf(&b, "   %s\n", record.Snippet)
		fmt.Fprintf(&b, "   Source: %s | %s\n", record.Source, record.Published)
		fmt.Fprintf(&b, "   Search Engine: %s\n\n", record.Origin)
	}

	return b.String()
}
