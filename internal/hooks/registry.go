// ABOUTME: Immutable event-name to hook-command registry built once at session start
// ABOUTME: Lookup is exact string match; absence of a mapping is not an error

package hooks

import (
	"fmt"
	"sort"
)

// Registry maps an event kind name to an ordered list of hook commands.
// Each command is an argv list: token 0 is the executable, the rest are
// arguments passed verbatim. The registry is read-only after construction,
// so concurrent lookups need no synchronization.
type Registry struct {
	byEvent map[string][][]string
}

// NewRegistry builds a registry from an already-validated configuration
// mapping. The input is deep-copied; later mutation of the argument does not
// affect the registry.
func NewRegistry(hooks map[string][][]string) *Registry {
	byEvent := make(map[string][][]string, len(hooks))
	for event, commands := range hooks {
		copied := make([][]string, len(commands))
		for i, argv := range commands {
			copied[i] = append([]string(nil), argv...)
		}
		byEvent[event] = copied
	}
	return &Registry{byEvent: byEvent}
}

// Commands returns the configured argv lists for the given event name, in
// configured order. Returns nil when the event has no hooks.
func (r *Registry) Commands(event string) [][]string {
	return r.byEvent[event]
}

// Empty reports whether no hooks are configured at all.
func (r *Registry) Empty() bool {
	return len(r.byEvent) == 0
}

// EventNames returns the configured event names, sorted.
func (r *Registry) EventNames() []string {
	names := make([]string, 0, len(r.byEvent))
	for name := range r.byEvent {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate returns a human-readable warning for every hook entry that can
// never spawn a process: an empty argv list or an empty executable token.
// Malformed entries stay in the registry and remain runtime no-ops; this
// only surfaces them once at startup.
func (r *Registry) Validate() []string {
	var warnings []string
	for _, event := range r.EventNames() {
		for i, argv := range r.byEvent[event] {
			switch {
			case len(argv) == 0:
				warnings = append(warnings, fmt.Sprintf("hook %s[%d]: empty command", event, i))
			case argv[0] == "":
				warnings = append(warnings, fmt.Sprintf("hook %s[%d]: empty executable", event, i))
			}
		}
	}
	return warnings
}
