package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/epsync/internal/journal"
	"github.com/harrison/epsync/internal/models"
)

func executeHistory(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewHistoryCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestHistoryEmptyJournal(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	output, err := executeHistory(t, "--db", dbPath)

	require.NoError(t, err)
	assert.Contains(t, output, "No journal entries found")
}

func TestHistoryShowsRecordedEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	j, err := journal.Open(dbPath, uuid.NewString(), "ian/episodes")
	require.NoError(t, err)
	require.NoError(t, j.Record(models.SyncResult{
		File:    models.EpisodeFile{RelPath: "episodes/episode-1.csv"},
		Action:  models.ActionUploaded,
		Message: "Adding episodes/episode-1.csv",
	}))
	require.NoError(t, j.Close())

	output, err := executeHistory(t, "--db", dbPath)

	require.NoError(t, err)
	assert.Contains(t, output, "uploaded")
	assert.Contains(t, output, "ian/episodes")
	assert.Contains(t, output, "episodes/episode-1.csv")
}

func TestHistoryRespectsLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	j, err := journal.Open(dbPath, uuid.NewString(), "ian/episodes")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(models.SyncResult{
			File:   models.EpisodeFile{RelPath: "episodes/episode-1.csv"},
			Action: models.ActionSkipped,
		}))
	}
	require.NoError(t, j.Close())

	output, err := executeHistory(t, "--db", dbPath, "--limit", "2")

	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(output), []byte("skipped")))
}
