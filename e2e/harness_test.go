// ABOUTME: E2E harness: builds the pi-hooks binary once and drives it in tests
// ABOUTME: Includes a PTY session helper for interactive picker tests

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// buildBinary compiles cmd/pi-hooks once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "pi-hooks-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "pi-hooks")

		cmd := exec.Command("go", "build", "-o", binPath, "github.com/mauromedda/pi-hooks-go/cmd/pi-hooks")
		cmd.Dir = repoRoot()
		out, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("go build: %v\n%s", err, out)
		}
	})

	if buildErr != nil {
		t.Fatalf("building binary: %v", buildErr)
	}
	return binPath
}

// repoRoot walks up from the test's cwd until it finds go.mod.
func repoRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// writeExecutable writes a script with the executable bit set.
func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// ptySession drives one pi-hooks invocation through a pseudo-terminal.
type ptySession struct {
	cmd  *exec.Cmd
	tty  *os.File
	mu   sync.Mutex
	out  bytes.Buffer
	done chan error
}

// startPTY launches the binary with the given args and env on a fresh PTY.
func startPTY(t *testing.T, bin string, env []string, args ...string) *ptySession {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), env...)

	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}

	s := &ptySession{cmd: cmd, tty: tty, done: make(chan error, 1)}

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := tty.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				break
			}
		}
	}()
	go func() {
		s.done <- cmd.Wait()
	}()

	return s
}

func (s *ptySession) send(t *testing.T, input string) {
	t.Helper()
	if _, err := s.tty.WriteString(input); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

func (s *ptySession) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// expectStringTimeout waits until the accumulated output contains want.
func (s *ptySession) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(s.output(), want) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q in output:\n%s", want, s.output())
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (s *ptySession) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()

	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output:\n%s", timeout, s.output())
	}
}

func (s *ptySession) close() {
	_ = s.tty.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
}
