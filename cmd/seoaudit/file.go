package main

import (
	"fmt"

	"github.com/fwojciec/seoaudit"
)

// Run executes the file command.
func (c *FileCmd) Run(deps *Dependencies) error {
	html, sourceID, err := deps.Loader.Load(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	record, err := deps.Runner.Audit(deps.Ctx, html, sourceID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	printRecord(deps.Stdout, record)
	return nil
}
