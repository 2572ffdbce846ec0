package main

import (
	"github.com/fwojciec/seoaudit"
)

// Run executes the reject command.
func (c *RejectCmd) Run(deps *Dependencies) error {
	return decide(deps, c.Source, c.SuggestionID, seoaudit.StatusRejected)
}
