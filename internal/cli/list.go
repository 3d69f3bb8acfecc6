package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/solve"
)

// listEntry is the JSON shape of one catalog row.
type listEntry struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Title string `json:"title"`
}

func newListCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered solutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalog := solve.All()

			if root.Format == "json" {
				entries := make([]listEntry, 0, len(catalog))
				for _, sol := range catalog {
					entries = append(entries, listEntry{Year: sol.Year, Day: sol.Day, Title: sol.Title})
				}
				return WriteJSON(out, entries)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE")
			for _, sol := range catalog {
				fmt.Fprintf(w, "%s\t%s\n", sol.ID(), sol.Title)
			}
			return w.Flush()
		},
	}
}
