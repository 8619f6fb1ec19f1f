// ABOUTME: Standard filesystem paths for pi-hooks configuration and data
// ABOUTME: Resolves ~/.pi-hooks/ for global and .pi-hooks/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-hooks"
	projectDirName = ".pi-hooks"

	historyFilename = "history.jsonl"
)

// GlobalDir returns the user-global config directory (~/.pi-hooks/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pi-hooks/ in the
// project root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// HooksManifestFiles returns the hooks manifest paths in overlay order
// (global first, then project-local; later entries win).
func HooksManifestFiles(projectRoot string) []string {
	return []string{
		filepath.Join(GlobalDir(), "hooks.yaml"),
		filepath.Join(ProjectDir(projectRoot), "hooks.yaml"),
	}
}

// HistoryFile returns the path to the prompt history file.
func HistoryFile() string {
	return filepath.Join(GlobalDir(), historyFilename)
}

// EnsureDir creates a directory and all parents if they don't exist.
// Uses 0o700 since the directory holds prompt history.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
