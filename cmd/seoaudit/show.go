package main

import (
	"fmt"

	"github.com/fwojciec/seoaudit"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	var record *seoaudit.AuditRecord
	var err error

	if c.Fingerprint != "" {
		record, err = deps.Store.Load(deps.Ctx, c.Source, c.Fingerprint)
	} else {
		record, err = deps.Store.Latest(deps.Ctx, c.Source)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	printRecord(deps.Stdout, record)
	return nil
}
