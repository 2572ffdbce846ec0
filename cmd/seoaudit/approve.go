package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/seoaudit"
	"github.com/fwojciec/seoaudit/audit"
)

// Run executes the approve command.
func (c *ApproveCmd) Run(deps *Dependencies) error {
	return decide(deps, c.Source, c.SuggestionID, seoaudit.StatusApproved)
}

// decide applies a human approval decision to the latest audit record for
// a source and persists the updated view.
func decide(deps *Dependencies, source, suggestionID string, status seoaudit.Status) error {
	record, err := deps.Store.Latest(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	if err := audit.Decide(record, suggestionID, status, time.Now()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	if err := deps.Store.Save(deps.Ctx, record); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Suggestion %s %s for %s\n", suggestionID, status, source)
	return nil
}
