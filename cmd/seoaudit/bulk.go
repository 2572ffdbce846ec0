package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/seoaudit/audit"
)

// Run executes the bulk command.
func (c *BulkCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("cannot read URL list %q: %w", c.File, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %q", c.File)
	}

	progress := func(event audit.ProgressEvent) {
		switch event.Type {
		case audit.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] ok      %s\n", event.Completed, event.Total, event.SourceID)
		case audit.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed  %s: %s\n", event.Completed, event.Total, event.SourceID, event.Error)
		}
	}

	results := deps.Runner.RunBatch(deps.Ctx, urls, progress)

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(deps.Stdout, "%s: error: %s\n", result.SourceID, result.Err)
			continue
		}
		fmt.Fprintln(deps.Stdout)
		printRecord(deps.Stdout, result.Record)
	}

	fmt.Fprintf(deps.Stdout, "\nAudited %d sources, %d failed.\n", len(results), failed)
	return nil
}
