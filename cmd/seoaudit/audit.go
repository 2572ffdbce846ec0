package main

import (
	"fmt"

	"github.com/fwojciec/seoaudit"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	record, err := deps.Runner.AuditURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	printRecord(deps.Stdout, record)
	return nil
}
