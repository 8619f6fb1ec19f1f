// ABOUTME: Standalone YAML hooks manifest loading
// ABOUTME: hooks.yaml declares event-name to argv-list mappings outside config.json

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// hooksManifest is the YAML shape of a hooks.yaml file:
//
//	hooks:
//	  turn_started:
//	    - ["notify-send", "turn started"]
//	  exec_command_end:
//	    - ["./bin/record-exec"]
type hooksManifest struct {
	Hooks map[string][][]string `yaml:"hooks"`
}

// LoadHooksManifest reads one hooks.yaml file. A manifest without a hooks
// key yields an empty mapping. Returns the os.IsNotExist error unchanged
// when the file is absent so callers can skip missing manifests.
func LoadHooksManifest(path string) (map[string][][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m hooksManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m.Hooks, nil
}
