// ABOUTME: Process detachment stub for non-unix platforms
// ABOUTME: Hooks start in the default process group

//go:build !unix

package hooks

import "os/exec"

func detach(_ *exec.Cmd) {}
