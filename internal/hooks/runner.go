// ABOUTME: Runner dispatches lifecycle events to configured hook commands
// ABOUTME: Fire-and-forget: never blocks on children, never fails the caller

package hooks

import (
	"sync/atomic"

	"github.com/mauromedda/pi-hooks-go/internal/protocol"
)

// Runner fires hook commands for lifecycle events. It is created once when
// the session starts and is safe for concurrent use: the registry is
// immutable and the sequence counter is atomic.
type Runner struct {
	registry *Registry
	cwd      string
	seq      atomic.Uint64
}

// NewRunner creates a runner bound to the given registry and working
// directory. Every spawned hook runs with cwd as its working directory,
// regardless of where the emitting session is at dispatch time.
func NewRunner(registry *Registry, cwd string) *Runner {
	return &Runner{registry: registry, cwd: cwd}
}

// HandleEvent fires the hooks configured for the event's kind, in configured
// order. Events with no matching hooks are ignored. The call returns as soon
// as every child has been started; it never waits for one to finish and
// never returns an error to the emitting session.
func (r *Runner) HandleEvent(ev protocol.Event) {
	if r.registry.Empty() {
		return
	}

	name := ev.Msg.Kind.String()
	commands := r.registry.Commands(name)
	for _, argv := range commands {
		r.spawnHook(argv, name, ev.ID)
	}
}
