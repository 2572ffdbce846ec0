package main

import (
	"fmt"

	"github.com/fwojciec/seoaudit"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	records, err := deps.Store.History(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	for _, record := range records {
		var approved, rejected, pending int
		for _, s := range record.Suggestions {
			switch s.Approval.Status {
			case seoaudit.StatusApproved:
				approved++
			case seoaudit.StatusRejected:
				rejected++
			default:
				pending++
			}
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d suggestions (%d approved, %d rejected, %d pending)\n",
			record.GeneratedAt.Format("2006-01-02 15:04:05"), record.Fingerprint,
			len(record.Suggestions), approved, rejected, pending)
	}

	return nil
}
