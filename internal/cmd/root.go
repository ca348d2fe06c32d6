// Package cmd wires the epsync command-line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/epsync/internal/config"
	"github.com/harrison/epsync/internal/display"
	"github.com/harrison/epsync/internal/filelock"
	"github.com/harrison/epsync/internal/fileutil"
	"github.com/harrison/epsync/internal/github"
	"github.com/harrison/epsync/internal/journal"
	"github.com/harrison/epsync/internal/logger"
	"github.com/harrison/epsync/internal/sync"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for epsync
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epsync",
		Short: "Upload new episode files to a GitHub repository",
		Long: `epsync scans a local directory for files named episode-<digits>.csv,
sorts them by name, and uploads any not yet present in a GitHub
repository. The repository is created when it cannot be found.

Credentials come from the GITHUB_TOKEN environment variable, a .env
file, or the OS keyring.

Configuration is loaded from .epsync/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  epsync -r /data/show -t episodes --repository episodes -u ianford
  epsync -r . -t out --repository transcripts -u ianford --dry-run`,
		Version: Version,
		RunE:    runSync,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().StringP("root", "r", "", "Filesystem root directory (required)")
	cmd.Flags().StringP("target", "t", "", "Subdirectory under root to scan (required)")
	cmd.Flags().String("repository", "", "Remote repository name (required)")
	cmd.Flags().StringP("username", "u", "", "Remote account name (required)")

	cmd.Flags().String("config", "", "Path to config file (default: .epsync/config.yaml)")
	cmd.Flags().String("log-level", "", "Logging verbosity (debug, info, warn, error)")
	cmd.Flags().Bool("dry-run", false, "Check remote state without uploading")
	cmd.Flags().Bool("no-journal", false, "Disable the local sync journal")

	for _, flag := range []string{"root", "target", "repository", "username"} {
		cobra.CheckErr(cmd.MarkFlagRequired(flag))
	}

	cmd.AddCommand(NewHistoryCommand())

	return cmd
}

// runSync implements the top-to-bottom sync pipeline: enumerate local files,
// resolve the remote repository, then check-and-upload each file in order.
func runSync(cmd *cobra.Command, args []string) error {
	run := config.RunConfig{}
	run.Root, _ = cmd.Flags().GetString("root")
	run.Target, _ = cmd.Flags().GetString("target")
	run.Repository, _ = cmd.Flags().GetString("repository")
	run.Owner, _ = cmd.Flags().GetString("username")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.ResolvePath(run.Root, config.DefaultConfigPath)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noJournal, _ := cmd.Flags().GetBool("no-journal")

	out := cmd.OutOrStdout()
	log := logger.NewConsoleLogger(out, cfg.LogLevel)

	log.LogInfo(fmt.Sprintf("Root path: %s", run.Root))
	log.LogInfo(fmt.Sprintf("Target path: %s", run.Target))

	// Local filesystem preconditions come first: a missing root or target
	// fails the run before any network call is made.
	files, err := fileutil.ScanEpisodes(run.Root, run.Target)
	if err != nil {
		return err
	}
	log.LogInfo(fmt.Sprintf("File count: %d", len(files)))

	lock, err := filelock.Acquire(config.ResolvePath(run.Root, cfg.LockPath))
	if err != nil {
		return err
	}
	defer lock.Release()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	token, err := github.ResolveToken()
	if err != nil {
		return err
	}
	session := github.NewClient(ctx, token)

	repo := github.Resolve(ctx, session, run.Owner, run.Repository, log)
	if repo == nil {
		// Unresolvable and uncreatable: nothing to sync, not a failure
		log.LogInfo("Repository could not be resolved or created, nothing to sync")
		return nil
	}

	runID := uuid.NewString()

	var recorder sync.Recorder
	if cfg.Journal.Enabled && !noJournal {
		j, err := journal.Open(config.ResolvePath(run.Root, cfg.Journal.DBPath), runID, repo.FullName())
		if err != nil {
			display.Warning{
				Title:   "Sync journal unavailable",
				Message: fmt.Sprintf("Continuing without journal: %v", err),
			}.Display(out)
		} else {
			defer j.Close()
			recorder = j
		}
	}

	engine := sync.NewEngine(repo, log, sync.Options{
		DryRun:             dryRun,
		UploadOnCheckError: cfg.UploadOnCheckError,
		MessageTemplate:    cfg.CommitMessageTemplate,
		Recorder:           recorder,
	})

	summary, err := engine.Sync(ctx, files)
	if err != nil {
		return err
	}
	summary.RunID = runID

	display.PrintSummary(out, summary)
	return nil
}
