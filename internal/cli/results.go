package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/store"
)

type resultsOptions struct {
	root     *RootOptions
	database string
	year     int
}

// resultRow is the JSON shape of one recorded run.
type resultRow struct {
	ID        string `json:"id"`
	Year      int    `json:"year"`
	Day       int    `json:"day"`
	Part1     int64  `json:"part1"`
	Part2     int64  `json:"part2"`
	Part1Usec int64  `json:"part1_us"`
	Part2Usec int64  `json:"part2_us"`
	CreatedAt string `json:"created_at"`
}

func newResultsCommand(root *RootOptions) *cobra.Command {
	opts := &resultsOptions{root: root}

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show recorded runs from the results ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showResults(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.database, "db", "", "results ledger database file (required)")
	cmd.Flags().IntVar(&opts.year, "year", 0, "restrict to one year (0 = all)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func showResults(cmd *cobra.Command, opts *resultsOptions) error {
	s, err := store.Open(opts.database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open results ledger", err)
	}
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), opts.year)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list runs", err)
	}

	out := cmd.OutOrStdout()
	if opts.root.Format == "json" {
		rows := make([]resultRow, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, resultRow{
				ID:        run.ID,
				Year:      run.Year,
				Day:       run.Day,
				Part1:     run.Part1,
				Part2:     run.Part2,
				Part1Usec: run.Part1Time.Microseconds(),
				Part2Usec: run.Part2Time.Microseconds(),
				CreatedAt: run.CreatedAt.Format(time.RFC3339),
			})
		}
		return WriteJSON(out, rows)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tID\tPART 1\tPART 2\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d/%d\t%s\t%s\t%s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.Year, run.Day,
			FormatCount(run.Part1),
			FormatCount(run.Part2),
			(run.Part1Time + run.Part2Time).Round(time.Microsecond),
		)
	}
	return w.Flush()
}
