// ABOUTME: Lifecycle event taxonomy shared by the session stream and the hook runner
// ABOUTME: EventKind is a closed enum with a hand-maintained wire-name mapping

package protocol

import (
	"encoding/json"
	"fmt"
)

// EventKind identifies one kind of lifecycle event.
type EventKind int

const (
	KindUnknown EventKind = iota
	KindSessionConfigured
	KindTurnStarted
	KindTurnComplete
	KindTurnAborted
	KindUserMessage
	KindAgentMessage
	KindAgentReasoning
	KindExecCommandBegin
	KindExecCommandEnd
	KindExecApprovalRequest
	KindApplyPatchApprovalRequest
	KindPatchApplyBegin
	KindPatchApplyEnd
	KindMcpToolCallBegin
	KindMcpToolCallEnd
	KindTokenCount
	KindError
	KindShutdownComplete
)

// String returns the stable wire name of the event kind. The mapping is
// maintained by hand so that renaming a constant never changes the name
// hook configurations and hook scripts see.
func (k EventKind) String() string {
	switch k {
	case KindSessionConfigured:
		return "session_configured"
	case KindTurnStarted:
		return "turn_started"
	case KindTurnComplete:
		return "turn_complete"
	case KindTurnAborted:
		return "turn_aborted"
	case KindUserMessage:
		return "user_message"
	case KindAgentMessage:
		return "agent_message"
	case KindAgentReasoning:
		return "agent_reasoning"
	case KindExecCommandBegin:
		return "exec_command_begin"
	case KindExecCommandEnd:
		return "exec_command_end"
	case KindExecApprovalRequest:
		return "exec_approval_request"
	case KindApplyPatchApprovalRequest:
		return "apply_patch_approval_request"
	case KindPatchApplyBegin:
		return "patch_apply_begin"
	case KindPatchApplyEnd:
		return "patch_apply_end"
	case KindMcpToolCallBegin:
		return "mcp_tool_call_begin"
	case KindMcpToolCallEnd:
		return "mcp_tool_call_end"
	case KindTokenCount:
		return "token_count"
	case KindError:
		return "error"
	case KindShutdownComplete:
		return "shutdown_complete"
	default:
		return "unknown"
	}
}

// allKinds lists every known kind for parsing and enumeration.
var allKinds = []EventKind{
	KindSessionConfigured,
	KindTurnStarted,
	KindTurnComplete,
	KindTurnAborted,
	KindUserMessage,
	KindAgentMessage,
	KindAgentReasoning,
	KindExecCommandBegin,
	KindExecCommandEnd,
	KindExecApprovalRequest,
	KindApplyPatchApprovalRequest,
	KindPatchApplyBegin,
	KindPatchApplyEnd,
	KindMcpToolCallBegin,
	KindMcpToolCallEnd,
	KindTokenCount,
	KindError,
	KindShutdownComplete,
}

// ParseEventKind maps a wire name back to its EventKind.
// Returns KindUnknown and false for names not in the taxonomy.
func ParseEventKind(name string) (EventKind, bool) {
	for _, k := range allKinds {
		if k.String() == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// KnownKindNames returns the wire names of all known kinds in declaration order.
func KnownKindNames() []string {
	names := make([]string, len(allKinds))
	for i, k := range allKinds {
		names[i] = k.String()
	}
	return names
}

// Event is one lifecycle notification emitted by the host session.
// ID is the opaque submission (correlation) id of the originating unit of
// work; every event produced by that unit carries the same id.
type Event struct {
	ID  string `json:"id"`
	Msg Msg    `json:"msg"`
}

// Msg is the tagged body of an event. Payload carries the kind-specific
// fields verbatim; the dispatcher never interprets them.
type Msg struct {
	Kind    EventKind
	Payload json.RawMessage
}

// msgEnvelope is the wire shape of Msg: a flat object with a "type" tag.
type msgEnvelope struct {
	Type string `json:"type"`
}

// UnmarshalJSON decodes the tagged wire form, keeping the raw body as payload.
func (m *Msg) UnmarshalJSON(data []byte) error {
	var env msgEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding event msg: %w", err)
	}
	kind, ok := ParseEventKind(env.Type)
	if !ok {
		return fmt.Errorf("unknown event type %q", env.Type)
	}
	m.Kind = kind
	m.Payload = append(m.Payload[:0], data...)
	return nil
}

// MarshalJSON re-emits the tagged wire form. If a payload was captured it is
// emitted as-is (it already contains the type tag); otherwise a minimal
// envelope is produced.
func (m Msg) MarshalJSON() ([]byte, error) {
	if len(m.Payload) > 0 {
		return m.Payload, nil
	}
	return json.Marshal(msgEnvelope{Type: m.Kind.String()})
}

// NewEvent builds an event with a minimal body for the given kind.
func NewEvent(id string, kind EventKind) Event {
	return Event{ID: id, Msg: Msg{Kind: kind}}
}
