package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/harness"
)

func newCheckCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>...",
		Short: "Run case manifests and verify expected answers",
		Long: `Check loads one or more YAML case manifests, solves every case, and
compares the answers against the expectations recorded in the manifest.
Any mismatch or solver error fails the check.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkManifests(cmd, root, args)
		},
	}
}

func checkManifests(cmd *cobra.Command, root *RootOptions, paths []string) error {
	out := cmd.OutOrStdout()

	var results []*harness.ManifestResult
	failed := 0
	for _, path := range paths {
		m, err := harness.LoadManifest(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load manifest", err)
		}
		result, err := m.RunManifest()
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to run manifest %s", path), err)
		}
		results = append(results, result)
		failed += result.Failed
	}

	if root.Format == "json" {
		if err := WriteJSON(out, results); err != nil {
			return err
		}
	} else {
		printCheckResults(cmd, results)
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", failed))
	}
	return nil
}

func printCheckResults(cmd *cobra.Command, results []*harness.ManifestResult) {
	out := cmd.OutOrStdout()
	for _, result := range results {
		fmt.Fprintf(out, "%s  %s\n", result.ID, result.Title)
		for _, c := range result.Cases {
			mark := "ok"
			if !c.Pass {
				mark = "FAIL"
			}
			fmt.Fprintf(out, "  [%s] %s  part1=%d part2=%d\n", mark, c.Name, c.Part1, c.Part2)
			for _, msg := range c.Errors {
				fmt.Fprintf(out, "         %s\n", msg)
			}
		}
		fmt.Fprintf(out, "  %d/%d passed\n", result.Passed, result.Total)
	}
}
