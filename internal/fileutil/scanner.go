// Package fileutil locates local episode files eligible for upload.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/harrison/epsync/internal/models"
)

// episodePattern matches the fixed episode file naming convention.
// Case-sensitive; any other name is ignored silently.
var episodePattern = regexp.MustCompile(`^episode-\d+\.csv$`)

// ScanEpisodes lists the immediate children of root/target whose names match
// episode-<digits>.csv, sorted by raw filename ascending. The sort is plain
// string ordering, not numeric-aware: episode-10.csv sorts before
// episode-2.csv.
//
// Both root and root/target must exist and be directories; anything else is
// an error. Zero matches is valid and yields an empty slice.
func ScanEpisodes(root, target string) ([]models.EpisodeFile, error) {
	rootDir, err := resolveDir(root)
	if err != nil {
		return nil, err
	}

	targetDir, err := resolveDir(filepath.Join(rootDir, target))
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", targetDir, err)
	}

	files := make([]models.EpisodeFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !episodePattern.MatchString(entry.Name()) {
			continue
		}

		absPath := filepath.Join(targetDir, entry.Name())
		relPath, err := filepath.Rel(rootDir, absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", absPath, err)
		}

		files = append(files, models.EpisodeFile{
			Path: absPath,
			Name: entry.Name(),
			// Remote paths always use forward slashes
			RelPath: filepath.ToSlash(relPath),
		})
	}

	// Sort for deterministic upload order
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// resolveDir converts a path to absolute form and verifies it is an existing
// directory.
func resolveDir(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to access directory %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", absPath)
	}

	return absPath, nil
}
