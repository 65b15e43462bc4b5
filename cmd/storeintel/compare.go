package main

import "fmt"

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	analysis := deps.Aggregator.CompetitiveAnalysis(deps.Ctx, c.Main, c.Competitors)

	if err := writeJSON(deps, analysis); err != nil {
		return err
	}
	if analysis.MainSite.Failed() {
		return fmt.Errorf("analysis failed: %s", analysis.MainSite.Err.Message)
	}
	return nil
}
