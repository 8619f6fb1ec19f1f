// ABOUTME: JSONL prompt history: append-only writes and bounded tail reads
// ABOUTME: Search loads newest-first with consecutive-duplicate dedup and an entry cap

package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultMaxBytes bounds how much of the history file tail is read.
	DefaultMaxBytes int64 = 1024 * 1024
	// DefaultMaxEntries caps the number of entries loaded for search.
	DefaultMaxEntries = 2000
)

// Entry is one history record: a prompt submitted during a session.
type Entry struct {
	SessionID string `json:"session_id"`
	Ts        int64  `json:"ts"`
	Text      string `json:"text"`
}

// Append writes one entry to the history file, creating the file and its
// directory as needed. Writes are O_APPEND so concurrent sessions interleave
// whole lines rather than corrupting each other.
func Append(path string, entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing history entry: %w", err)
	}
	return nil
}

// Limits bounds a history load. Zero fields fall back to the defaults.
type Limits struct {
	MaxBytes   int64
	MaxEntries int
}

func (l Limits) maxBytes() int64 {
	if l.MaxBytes > 0 {
		return l.MaxBytes
	}
	return DefaultMaxBytes
}

func (l Limits) maxEntries() int {
	if l.MaxEntries > 0 {
		return l.MaxEntries
	}
	return DefaultMaxEntries
}

// Entries loads prompt texts from the history file tail, newest first.
// Only the last MaxBytes of the file are read; when that cut lands mid-line
// the partial first line is dropped so parsing starts at a record boundary.
// Blank prompts, unparsable lines, and consecutive duplicates are skipped.
// A missing file yields no entries and no error.
func Entries(path string, limits Limits) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil
	}

	start := info.Size() - limits.maxBytes()
	if start < 0 {
		start = 0
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return nil
	}

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil
	}

	// Drop the partial first line so parsing starts at a JSON boundary.
	if start > 0 {
		idx := strings.IndexByte(string(buf), '\n')
		if idx < 0 {
			return nil
		}
		buf = buf[idx+1:]
	}

	lines := strings.Split(string(buf), "\n")

	var out []string
	var last string
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Text == "" {
			continue
		}
		if entry.Text == last {
			continue
		}
		last = entry.Text
		out = append(out, entry.Text)
		if len(out) >= limits.maxEntries() {
			break
		}
	}

	return out
}

// Record appends a prompt for the given session with the current time.
func Record(path, sessionID, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return Append(path, Entry{
		SessionID: sessionID,
		Ts:        time.Now().Unix(),
		Text:      text,
	})
}
