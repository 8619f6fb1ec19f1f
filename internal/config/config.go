// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration; hooks may also come from a YAML manifest

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	// Hooks maps an event kind name to an ordered list of argv lists.
	Hooks map[string][][]string `json:"hooks,omitempty"`

	// WorkDir is the working directory for spawned hooks. Defaults to the
	// process cwd at session start when empty.
	WorkDir string `json:"work_dir,omitempty"`

	// Env holds extra variables exported to the process environment at startup.
	Env map[string]string `json:"env,omitempty"`

	History HistorySettings `json:"history,omitempty"`
	Verbose bool            `json:"verbose,omitempty"`
}

// HistorySettings bounds the history search tail read.
type HistorySettings struct {
	MaxBytes   int64 `json:"max_bytes,omitempty"`
	MaxEntries int   `json:"max_entries,omitempty"`
}

// Load reads and merges global and project-local settings, then overlays any
// hooks manifests. Project settings override global settings; a manifest
// overrides both, per event kind.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)

	for _, path := range HooksManifestFiles(projectRoot) {
		overlay, err := LoadHooksManifest(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("loading hooks manifest: %w", err)
		}
		merged.Hooks = MergeHooks(merged.Hooks, overlay)
	}

	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values override global values; hook lists are replaced
// per event kind, never concatenated.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	result.Hooks = MergeHooks(global.Hooks, project.Hooks)

	if project.WorkDir != "" {
		result.WorkDir = project.WorkDir
	}
	if project.History.MaxBytes != 0 {
		result.History.MaxBytes = project.History.MaxBytes
	}
	if project.History.MaxEntries != 0 {
		result.History.MaxEntries = project.History.MaxEntries
	}
	if project.Verbose {
		result.Verbose = true
	}

	if len(project.Env) > 0 {
		env := make(map[string]string, len(global.Env)+len(project.Env))
		for k, v := range global.Env {
			env[k] = v
		}
		for k, v := range project.Env {
			env[k] = v
		}
		result.Env = env
	}

	return &result
}

// MergeHooks overlays hook lists per event kind. An event present in overlay
// replaces the base list wholesale, so a project can disable a global hook
// by declaring an empty list for its event.
func MergeHooks(base, overlay map[string][][]string) map[string][][]string {
	if len(overlay) == 0 {
		return base
	}
	result := make(map[string][][]string, len(base)+len(overlay))
	for event, commands := range base {
		result[event] = commands
	}
	for event, commands := range overlay {
		result[event] = commands
	}
	return result
}
