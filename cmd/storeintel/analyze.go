package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	insights := deps.Aggregator.ExtractSiteInsights(deps.Ctx, c.URL)

	if err := writeJSON(deps, insights); err != nil {
		return err
	}
	if insights.Failed() {
		return fmt.Errorf("analysis failed: %s", insights.Err.Message)
	}
	return nil
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
