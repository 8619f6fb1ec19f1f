// ABOUTME: Tests for the JSONL stream decoder
// ABOUTME: Malformed and unknown lines are skipped without stopping the stream

package protocol

import (
	"context"
	"strings"
	"testing"
)

func TestDecodeStream_SkipsBadLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`{"id":"sub-1","msg":{"type":"turn_started"}}`,
		``,
		`not json at all`,
		`{"id":"sub-1","msg":{"type":"not_a_kind"}}`,
		`{"msg":{"type":"turn_complete"}}`,
		`{"id":"sub-1","msg":{"type":"turn_complete"}}`,
	}, "\n")

	var got []Event
	err := DecodeStream(context.Background(), strings.NewReader(input), func(ev Event) {
		got = append(got, ev)
	})
	if err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("decoded %d events, want 2", len(got))
	}
	if got[0].Msg.Kind != KindTurnStarted || got[1].Msg.Kind != KindTurnComplete {
		t.Errorf("kinds = %v, %v", got[0].Msg.Kind, got[1].Msg.Kind)
	}
}

func TestDecodeStream_ContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := `{"id":"sub-1","msg":{"type":"turn_started"}}` + "\n"
	err := DecodeStream(ctx, strings.NewReader(input), func(Event) {
		t.Error("callback invoked after cancellation")
	})
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestDecodeStream_LargeLine(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", 200*1024)
	input := `{"id":"sub-1","msg":{"type":"agent_message","message":"` + big + `"}}` + "\n"

	var count int
	err := DecodeStream(context.Background(), strings.NewReader(input), func(Event) {
		count++
	})
	if err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	if count != 1 {
		t.Errorf("decoded %d events, want 1", count)
	}
}
