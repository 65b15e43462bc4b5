package main

import (
	"fmt"

	"github.com/storeintel/storeintel/extract"
)

// Run executes the bulk command.
func (c *BulkCmd) Run(deps *Dependencies) error {
	run := deps.Orchestrator.Run(deps.Ctx, c.URLs, func(p extract.Progress) {
		status := "ok"
		if p.Err != nil {
			status = p.Err.Error()
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", p.Completed, p.Total, p.URL, status)
	})

	return writeJSON(deps, run)
}
