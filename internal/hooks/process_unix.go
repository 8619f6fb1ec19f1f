// ABOUTME: Unix-specific process detachment for hook commands
// ABOUTME: New process group so terminal signals to the session don't reach hooks

//go:build unix

package hooks

import (
	"os/exec"
	"syscall"
)

// detach puts the hook in its own process group. Hooks outlive the session
// if still running when it exits; they must not share its signal fate.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
