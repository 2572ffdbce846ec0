package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/seoaudit"
)

// printRecord writes a human-readable summary of an audit record.
func printRecord(w io.Writer, record *seoaudit.AuditRecord) {
	fmt.Fprintf(w, "Source:      %s\n", record.SourceID)
	if record.Title != "" {
		fmt.Fprintf(w, "Title:       %s\n", record.Title)
	}
	fmt.Fprintf(w, "Fingerprint: %s\n", record.Fingerprint)
	fmt.Fprintf(w, "Generated:   %s\n", record.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Words: %d  Sentences: %d  Avg sentence length: %.1f\n",
		record.Metrics.WordCount, record.Metrics.SentenceCount, record.Metrics.AvgSentenceLength)
	fmt.Fprintf(w, "Links: %d internal, %d external\n",
		record.Links.InternalCount, record.Links.ExternalCount)

	if top := record.Metrics.TopKeywords(5); len(top) > 0 {
		fmt.Fprint(w, "Top keywords:")
		for _, kw := range top {
			fmt.Fprintf(w, " %s(%d)", kw.Keyword, kw.Count)
		}
		fmt.Fprintln(w)
	}

	if len(record.Suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions. Looks healthy.")
		return
	}

	fmt.Fprintf(w, "Suggestions (%d):\n", len(record.Suggestions))
	for _, s := range record.Suggestions {
		fmt.Fprintf(w, "  %s  %-8s  %-23s  [%s]  %s\n",
			s.Suggestion.ID, s.Suggestion.Severity, s.Suggestion.Rule, s.Approval.Status, s.Suggestion.Message)
	}
}
