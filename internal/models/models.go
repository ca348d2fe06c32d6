// Package models defines the core data structures shared across epsync.
package models

import "time"

// EpisodeFile is one local file eligible for upload.
type EpisodeFile struct {
	// Path is the absolute filesystem path of the file
	Path string

	// Name is the bare filename (e.g. "episode-42.csv")
	Name string

	// RelPath is the path relative to the configured root, using forward
	// slashes. It doubles as the remote path within the repository.
	RelPath string
}

// SyncAction describes what the sync engine did with one file.
type SyncAction string

const (
	// ActionUploaded means the file was created in the remote repository
	ActionUploaded SyncAction = "uploaded"

	// ActionSkipped means the file already existed remotely
	ActionSkipped SyncAction = "skipped"

	// ActionPlanned means a dry run would have uploaded the file
	ActionPlanned SyncAction = "planned"
)

// SyncResult is the outcome for a single file.
type SyncResult struct {
	File    EpisodeFile
	Action  SyncAction
	Message string
}

// RunSummary aggregates the outcomes of one sync run.
type RunSummary struct {
	RunID      string
	Repository string
	Total      int
	Uploaded   int
	Skipped    int
	Planned    int
	Duration   time.Duration
}
