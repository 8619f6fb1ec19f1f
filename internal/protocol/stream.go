// ABOUTME: JSONL event stream decoder with skip-on-malformed semantics
// ABOUTME: Reads one event per line; tolerates large lines via a 1 MiB scanner buffer

package protocol

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/pi-hooks-go/internal/log"
)

// maxLineBytes bounds a single JSONL event line.
const maxLineBytes = 1024 * 1024

// DecodeStream reads JSONL events from r and calls fn for each decoded event.
// Blank lines, malformed JSON, and unknown event types are skipped with a
// debug log so that one bad producer line never stalls hook dispatch.
// Returns when r is exhausted, the context is cancelled, or reading fails.
func DecodeStream(ctx context.Context, r io.Reader, fn func(Event)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ev Event
		if err := unmarshalEvent(line, &ev); err != nil {
			log.Debug("skipping event line: %v", err)
			continue
		}
		fn(ev)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading event stream: %w", err)
	}
	return nil
}

func unmarshalEvent(line string, ev *Event) error {
	if err := json.Unmarshal([]byte(line), ev); err != nil {
		return err
	}
	if ev.ID == "" {
		return fmt.Errorf("event missing id")
	}
	return nil
}
