package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a freshly-built root command with the given args and captures
// its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandRequiresAllFlags(t *testing.T) {
	_, err := execute(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRootCommandRequiresEachFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing root", []string{"-t", "episodes", "--repository", "episodes", "-u", "ian"}},
		{"missing target", []string{"-r", ".", "--repository", "episodes", "-u", "ian"}},
		{"missing repository", []string{"-r", ".", "-t", "episodes", "-u", "ian"}},
		{"missing username", []string{"-r", ".", "-t", "episodes", "--repository", "episodes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required flag")
		})
	}
}

func TestRootCommandMissingRootFailsBeforeNetwork(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")

	output, err := execute(t,
		"-r", missing,
		"-t", "episodes",
		"--repository", "episodes",
		"-u", "ian",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access directory")
	// The failure happens during local enumeration; no repository messages
	assert.NotContains(t, output, "Repository")
}

func TestRootCommandMissingTargetFails(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t,
		"-r", root,
		"-t", "absent",
		"--repository", "episodes",
		"-u", "ian",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access directory")
}

func TestRootCommandMalformedConfigFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "episodes"), 0755))

	configPath := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: [oops"), 0644))

	_, err := execute(t,
		"-r", root,
		"-t", "episodes",
		"--repository", "episodes",
		"-u", "ian",
		"--config", configPath,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestRootCommandHasHistorySubcommand(t *testing.T) {
	cmd := NewRootCommand()

	sub, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)
	assert.Equal(t, "history", sub.Name())
}
