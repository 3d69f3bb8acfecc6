package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/solve"
	"github.com/roach88/advent/internal/store"
)

type runOptions struct {
	root     *RootOptions
	input    string
	database string
}

// runReport is the JSON shape of a single solved day.
type runReport struct {
	Year      int    `json:"year"`
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Part1     int64  `json:"part1"`
	Part2     int64  `json:"part2"`
	Part1Usec int64  `json:"part1_us"`
	Part2Usec int64  `json:"part2_us"`
}

func newRunCommand(root *RootOptions) *cobra.Command {
	opts := &runOptions{root: root}

	cmd := &cobra.Command{
		Use:   "run <year> <day>",
		Short: "Solve both parts of a day's puzzle",
		Long: `Run solves both parts of the given day against an input file and
prints the answers. With --db the run is appended to the results ledger.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "puzzle input file (required)")
	cmd.Flags().StringVar(&opts.database, "db", "", "results ledger database file")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runDay(cmd *cobra.Command, opts *runOptions, yearArg, dayArg string) error {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid year %q", yearArg))
	}
	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid day %q", dayArg))
	}

	sol, err := solve.Lookup(year, day)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("no solution for %d/%d", year, day), err)
	}

	data, err := os.ReadFile(opts.input)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	input := string(data)
	slog.Debug("input loaded", "path", opts.input, "bytes", len(data))

	start := time.Now()
	part1, err := sol.Part1(input)
	if err != nil {
		return WrapExitError(ExitFailure, "part 1 failed", err)
	}
	part1Time := time.Since(start)

	start = time.Now()
	part2, err := sol.Part2(input)
	if err != nil {
		return WrapExitError(ExitFailure, "part 2 failed", err)
	}
	part2Time := time.Since(start)

	slog.Info("solved", "id", sol.ID(), "part1_us", part1Time.Microseconds(), "part2_us", part2Time.Microseconds())

	if opts.database != "" {
		if err := recordRun(cmd, opts.database, sol, part1, part2, part1Time, part2Time); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.root.Format == "json" {
		return WriteJSON(out, runReport{
			Year:      sol.Year,
			Day:       sol.Day,
			Title:     sol.Title,
			Part1:     part1,
			Part2:     part2,
			Part1Usec: part1Time.Microseconds(),
			Part2Usec: part2Time.Microseconds(),
		})
	}

	fmt.Fprintf(out, "%s  %s\n", sol.ID(), sol.Title)
	fmt.Fprintf(out, "Part 1: %d\n", part1)
	fmt.Fprintf(out, "Part 2: %d\n", part2)
	return nil
}

func recordRun(cmd *cobra.Command, path string, sol solve.Solution, part1, part2 int64, part1Time, part2Time time.Duration) error {
	s, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open results ledger", err)
	}
	defer s.Close()

	run, err := s.RecordRun(cmd.Context(), store.Run{
		Year:      sol.Year,
		Day:       sol.Day,
		Part1:     part1,
		Part2:     part2,
		Part1Time: part1Time,
		Part2Time: part2Time,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to record run", err)
	}
	slog.Info("run recorded", "id", run.ID, "db", path)
	return nil
}
