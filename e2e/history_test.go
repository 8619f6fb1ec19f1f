// ABOUTME: E2E tests for the history subcommand: plain listing and PTY picker
// ABOUTME: Picker test drives the real binary through a pseudo-terminal

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeHistoryFile(t *testing.T, entries ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.jsonl")
	var b strings.Builder
	for i, text := range entries {
		fmt.Fprintf(&b, `{"session_id":"s","ts":%d,"text":%q}`+"\n", i+1, text)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("writing history: %v", err)
	}
	return path
}

func TestHistory_PlainListingWhenPiped(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	bin := buildBinary(t)
	home := t.TempDir()
	historyFile := writeHistoryFile(t, "oldest prompt", "middle prompt", "newest prompt")

	cmd := exec.Command(bin, "history", "-C", t.TempDir(), "-file", historyFile)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader("")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("pi-hooks history: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	want := []string{"newest prompt", "middle prompt", "oldest prompt"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines (%q), want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHistory_PickerSelectsFilteredEntry(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	bin := buildBinary(t)
	home := t.TempDir()
	historyFile := writeHistoryFile(t, "ordinary prompt", "zanzibar expedition notes")

	s := startPTY(t, bin, []string{"HOME=" + home}, "history", "-C", t.TempDir(), "-file", historyFile)
	defer s.close()

	s.expectStringTimeout(t, "History", 5*time.Second)

	// Narrow to the unique entry and select it.
	s.send(t, "zanzibar")
	s.expectStringTimeout(t, "zanzibar expedition notes", 5*time.Second)
	s.send(t, "\r")

	s.waitExit(t, 5*time.Second)

	if !strings.Contains(s.output(), "zanzibar expedition notes") {
		t.Errorf("selection not echoed:\n%s", s.output())
	}
}

func TestHistory_PickerEscCancels(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	bin := buildBinary(t)
	home := t.TempDir()
	historyFile := writeHistoryFile(t, "only entry")

	s := startPTY(t, bin, []string{"HOME=" + home}, "history", "-C", t.TempDir(), "-file", historyFile)
	defer s.close()

	s.expectStringTimeout(t, "History", 5*time.Second)
	s.send(t, "\x1b") // escape
	s.waitExit(t, 5*time.Second)
}
