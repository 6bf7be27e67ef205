package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store/sqlite"
)

var (
	runsDB    string
	runsLimit int
)

// runsCmd lists persisted corpus runs, or shows one run in detail.
var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "List persisted corpus runs or show one run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := sqlite.Open(cmd.Context(), runsDB)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if len(args) == 1 {
			return showRun(cmd.Context(), cmd.OutOrStdout(), st, args[0])
		}

		runs, err := st.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return nil
		}

		for _, r := range runs {
			fmt.Printf("%s  %s  articles=%d failures=%d  %s\n",
				r.ID,
				r.StartedAt.Format(time.RFC3339),
				r.Articles,
				r.Failures,
				r.TaxonomyPath,
			)
		}
		return nil
	},
}

// showRun prints one run's record, its corpus rows, and its failures.
func showRun(ctx context.Context, w io.Writer, st store.Store, id string) error {
	run, ok, err := st.GetRun(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: run %s", internalerr.ErrNotFound, id)
	}

	fmt.Fprintf(w, "%s  %s  articles=%d failures=%d  %s\n",
		run.ID,
		run.StartedAt.Format(time.RFC3339),
		run.Articles,
		run.Failures,
		run.TaxonomyPath,
	)

	rows, err := st.GetCorpusRows(ctx, id)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s  %s / %s  matches=%d per1000=%.2f\n",
			row.Article, row.Module, row.Category,
			row.Matches, row.MatchesPer1000Words,
		)
	}

	failures, err := st.GetFailures(ctx, id)
	if err != nil {
		return err
	}
	for _, f := range failures {
		fmt.Fprintf(w, "  skipped %s: %s\n", f.Path, f.Reason)
	}
	return nil
}

func init() {
	runsCmd.Flags().StringVar(&runsDB, "db", "lexiscan.db", "SQLite database path")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum runs to list")

	rootCmd.AddCommand(runsCmd)
}
