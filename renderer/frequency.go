package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/etnz/mbank"
)

// FrequenciesMarkdown renders the spend/income frequency breakdowns side by
// side. Either half may be empty on its own without hiding the other.
func FrequenciesMarkdown(report mbank.FrequencyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Activity — %s\n\n", report.Scope)
	writeBreakdown(&b, "Income", report.Income)
	writeBreakdown(&b, "Spending", report.Spending)
	return b.String()
}

func writeBreakdown(w io.Writer, title string, breakdown mbank.Breakdown) {
	fmt.Fprintf(w, "## %s (occurrences)\n\n", title)
	if breakdown.Empty() {
		msg := breakdown.Message
		if msg == "" {
			msg = "no data"
		}
		fmt.Fprintf(w, "_%s_\n\n", msg)
		return
	}
	for _, name := range sortedKeys(breakdown.Summary) {
		fmt.Fprintf(w, "- %s: %d\n", name, breakdown.Summary[name])
	}
	fmt.Fprintln(w)
	if breakdown.Suggestion != "" {
		fmt.Fprintf(w, "> %s\n\n", breakdown.Suggestion)
	}
}

// sortedKeys orders categories by descending count, then by name.
func sortedKeys(summary map[string]int) []string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if summary[keys[i]] != summary[keys[j]] {
			return summary[keys[i]] > summary[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
