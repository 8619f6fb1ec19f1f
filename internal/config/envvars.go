// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings:
// the hook argv tokens, the work directory, and the extra env values.
func ResolveEnvVars(s *Settings) {
	s.WorkDir = expandEnv(s.WorkDir)

	for k, v := range s.Env {
		s.Env[k] = expandEnv(v)
	}

	for event, commands := range s.Hooks {
		for i, argv := range commands {
			for j, token := range argv {
				commands[i][j] = expandEnv(token)
			}
		}
		s.Hooks[event] = commands
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
