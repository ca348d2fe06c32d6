package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Adding %s", cfg.CommitMessageTemplate)
	assert.True(t, cfg.UploadOnCheckError)
	assert.Equal(t, ".epsync/epsync.lock", cfg.LockPath)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, ".epsync/journal.db", cfg.Journal.DBPath)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesOnlyMentionedKeys(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
upload_on_check_error: false
journal:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.UploadOnCheckError)
	assert.False(t, cfg.Journal.Enabled)

	// Unmentioned keys keep their defaults
	assert.Equal(t, "Adding %s", cfg.CommitMessageTemplate)
	assert.Equal(t, ".epsync/journal.db", cfg.Journal.DBPath)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "log_level: [unclosed")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level: loud")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}

func TestLoadConfigEmptyCommitTemplate(t *testing.T) {
	path := writeConfig(t, `commit_message_template: ""`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit_message_template")
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", ".epsync/journal.db"), ResolvePath("/data", ".epsync/journal.db"))
	assert.Equal(t, "/var/lib/epsync.db", ResolvePath("/data", "/var/lib/epsync.db"))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
