// ABOUTME: Per-command hook process launcher: argv/env/cwd assembly and detached start
// ABOUTME: Context flows to the child only via PI_HOOK_* environment variables

package hooks

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/mauromedda/pi-hooks-go/internal/log"
)

// Environment variables set on every hook process. PI_HOOK_SEQ is a decimal
// string that is unique and strictly increasing across all hooks spawned by
// one runner, so scripts with no other channel can reconstruct dispatch order.
const (
	EnvHookEvent        = "PI_HOOK_EVENT"
	EnvHookSubmissionID = "PI_HOOK_SUBMISSION_ID"
	EnvHookSeq          = "PI_HOOK_SEQ"
)

// spawnHook starts one hook process and returns without waiting for it.
// Malformed entries (empty argv or empty executable) are a silent no-op and
// consume no sequence number. A failed spawn is logged as a warning; it does
// not stop dispatch of the event's remaining hooks.
func (r *Runner) spawnHook(argv []string, eventName, submissionID string) {
	if len(argv) == 0 || argv[0] == "" {
		return
	}

	seq := strconv.FormatUint(r.seq.Add(1)-1, 10)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.cwd
	cmd.Env = append(os.Environ(),
		EnvHookEvent+"="+eventName,
		EnvHookSubmissionID+"="+submissionID,
		EnvHookSeq+"="+seq,
	)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		log.Warn("failed to spawn hook %q: %v", argv[0], err)
		return
	}

	// Reap off the dispatch path so finished children don't linger as zombies.
	go func() { _ = cmd.Wait() }()
}
