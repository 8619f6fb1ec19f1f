// ABOUTME: Session binds an event stream to the hook runner and prompt history
// ABOUTME: Captures the working directory once at start; events flow through the bus

package session

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/mauromedda/pi-hooks-go/internal/eventbus"
	"github.com/mauromedda/pi-hooks-go/internal/history"
	"github.com/mauromedda/pi-hooks-go/internal/log"
	"github.com/mauromedda/pi-hooks-go/internal/protocol"
)

// Session owns one agent lifecycle stream. It publishes every decoded event
// on its bus and records submitted prompts into the history file. The
// working directory is captured at construction and never re-read, so hooks
// see a stable cwd no matter where the host process wanders later.
type Session struct {
	ID          string
	CWD         string
	bus         *eventbus.Bus[protocol.Event]
	historyPath string
}

// New creates a session rooted at cwd. historyPath may be empty to disable
// prompt recording.
func New(cwd, historyPath string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		CWD:         cwd,
		bus:         eventbus.New[protocol.Event](),
		historyPath: historyPath,
	}
}

// Bus exposes the event bus for subscribers such as the hook runner.
func (s *Session) Bus() *eventbus.Bus[protocol.Event] {
	return s.bus
}

// Notify records the event if it carries a prompt, then publishes it.
func (s *Session) Notify(ev protocol.Event) {
	if ev.Msg.Kind == protocol.KindUserMessage && s.historyPath != "" {
		if text := promptText(ev.Msg.Payload); text != "" {
			if err := history.Record(s.historyPath, s.ID, text); err != nil {
				log.Warn("failed to record prompt history: %v", err)
			}
		}
	}

	s.bus.Publish(ev)
}

// Pump decodes the JSONL event stream from r and feeds every event through
// Notify. Returns when the stream ends or ctx is cancelled.
func (s *Session) Pump(ctx context.Context, r io.Reader) error {
	return protocol.DecodeStream(ctx, r, s.Notify)
}

// promptText extracts the submitted prompt from a user_message payload.
func promptText(payload json.RawMessage) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Message
}
