package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/epsync/internal/config"
	"github.com/harrison/epsync/internal/journal"
)

// NewHistoryCommand creates the history subcommand, which prints recent
// entries from the local sync journal.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync journal entries",
		Long: `Print the most recent per-file outcomes recorded by previous runs.

The journal lives under the sync root (default .epsync/journal.db);
point --root at the same directory used for syncing, or pass --db
directly.`,
		RunE:         runHistory,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("root", "r", ".", "Filesystem root the journal belongs to")
	cmd.Flags().String("db", "", "Journal database path (overrides --root)")
	cmd.Flags().Int("limit", 20, "Maximum number of entries to show")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	dbPath, _ := cmd.Flags().GetString("db")
	limit, _ := cmd.Flags().GetInt("limit")

	if dbPath == "" {
		dbPath = config.ResolvePath(root, config.DefaultConfig().Journal.DBPath)
	}

	// History is read-only; the run ID and repository bindings are unused
	j, err := journal.Open(dbPath, "", "")
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No journal entries found")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-8s  %s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, e.Repository, e.Path)
	}

	return nil
}
