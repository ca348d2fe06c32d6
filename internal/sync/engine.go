// Package sync uploads local episode files that are missing from a remote
// repository.
package sync

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harrison/epsync/internal/github"
	"github.com/harrison/epsync/internal/models"
)

// Logger is the logging surface the engine needs.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Recorder persists per-file outcomes, typically to the sync journal.
type Recorder interface {
	Record(result models.SyncResult) error
}

// Options configures an Engine.
type Options struct {
	// DryRun checks remote existence but never uploads
	DryRun bool

	// UploadOnCheckError treats a failed existence check as "file absent"
	// and uploads anyway. When false, a failed check aborts the run.
	UploadOnCheckError bool

	// MessageTemplate is the fmt template for commit messages; it receives
	// the relative path as its only argument.
	MessageTemplate string

	// Recorder receives every per-file outcome; nil disables recording.
	// Recording failures are logged, never fatal.
	Recorder Recorder
}

// Engine synchronizes enumerated files into one remote repository.
// Files are processed strictly in the order given, one at a time.
type Engine struct {
	repo github.Repository
	log  Logger
	opts Options
}

// NewEngine creates an Engine bound to a repository handle.
func NewEngine(repo github.Repository, log Logger, opts Options) *Engine {
	if opts.MessageTemplate == "" {
		opts.MessageTemplate = "Adding %s"
	}
	return &Engine{repo: repo, log: log, opts: opts}
}

// Sync processes files in order: each is skipped when already present
// remotely as a regular file, uploaded otherwise. An upload failure aborts
// the run immediately; files already uploaded stay in place.
func (e *Engine) Sync(ctx context.Context, files []models.EpisodeFile) (models.RunSummary, error) {
	start := time.Now()
	summary := models.RunSummary{
		Repository: e.repo.FullName(),
		Total:      len(files),
	}

	for _, file := range files {
		e.log.LogDebug(fmt.Sprintf("File path: %s", file.RelPath))

		result, err := e.syncOne(ctx, file)
		if err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}

		switch result.Action {
		case models.ActionUploaded:
			summary.Uploaded++
		case models.ActionSkipped:
			summary.Skipped++
		case models.ActionPlanned:
			summary.Planned++
		}

		e.record(result)
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// syncOne pushes a single file through the check-then-create sequence.
func (e *Engine) syncOne(ctx context.Context, file models.EpisodeFile) (models.SyncResult, error) {
	content, err := readNormalized(file.Path)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("failed to read %s: %w", file.Path, err)
	}

	status, err := e.repo.StatFile(ctx, file.RelPath)
	if err != nil {
		if !e.opts.UploadOnCheckError {
			return models.SyncResult{}, fmt.Errorf("existence check failed for %s: %w", file.RelPath, err)
		}
		e.log.LogWarn(fmt.Sprintf("Treating %s as absent after failed existence check: %v", file.RelPath, err))
		status = github.StatusNotFound
	}

	if status == github.StatusFile {
		message := fmt.Sprintf("Skipping %s because it is already present", file.RelPath)
		e.log.LogInfo(message)
		return models.SyncResult{File: file, Action: models.ActionSkipped, Message: message}, nil
	}

	message := fmt.Sprintf(e.opts.MessageTemplate, file.RelPath)

	if e.opts.DryRun {
		e.log.LogInfo(fmt.Sprintf("[dry-run] %s", message))
		return models.SyncResult{File: file, Action: models.ActionPlanned, Message: message}, nil
	}

	if err := e.repo.CreateFile(ctx, file.RelPath, content, message); err != nil {
		return models.SyncResult{}, fmt.Errorf("upload failed for %s: %w", file.RelPath, err)
	}

	e.log.LogInfo(message)
	return models.SyncResult{File: file, Action: models.ActionUploaded, Message: message}, nil
}

// record hands the result to the recorder, logging failures without
// interrupting the run.
func (e *Engine) record(result models.SyncResult) {
	if e.opts.Recorder == nil {
		return
	}
	if err := e.opts.Recorder.Record(result); err != nil {
		e.log.LogWarn(fmt.Sprintf("Failed to record journal entry for %s: %v", result.File.RelPath, err))
	}
}

// readNormalized reads a file and joins its lines with a single newline.
// Line-ending style collapses to "\n" and a trailing newline, if any, is
// dropped; a file without a trailing newline uploads byte-identical.
func readNormalized(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	content := string(data)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")

	return content, nil
}
