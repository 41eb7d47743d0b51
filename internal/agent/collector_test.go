package agent_test

import (
	"errors"
	"testing"

	"github.com/gtz123456/Trip-Planner/internal/agent"
)

func stream(events ...agent.Event) <-chan agent.Event {
	ch := make(chan agent.Event, len(events))
	for _, event := range events {
		ch <- event
	}
	close(ch)
	return ch
}

func textMessage(stopReason, text string) agent.Event {
	return agent.Event{
		Type: agent.EventMessage,
		Message: &agent.Message{
			Role:       "assistant",
			StopReason: stopReason,
			Content: []agent.ContentBlock{
				{Type: agent.ContentText, Text: text},
			},
		},
	}
}

func TestCollect_FinalMessage(t *testing.T) {
	result, err := agent.Collect(stream(
		textMessage(agent.StopReasonToolUse, "checking sources"),
		textMessage(agent.StopReasonEndTurn, `{"summary":"done"}`),
	))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if result != `{"summary":"done"}` {
		t.Errorf("Collect() = %q, want %q", result, `{"summary":"done"}`)
	}
}

func TestCollect_LastEndTurnWins(t *testing.T) {
	result, err := agent.Collect(stream(
		textMessage(agent.StopReasonEndTurn, "first"),
		textMessage(agent.StopReasonEndTurn, "second"),
	))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if result != "second" {
		t.Errorf("Collect() = %q, want %q", result, "second")
	}
}

func TestCollect_ErrorAborts(t *testing.T) {
	ch := make(chan agent.Event, 2)
	ch <- textMessage(agent.StopReasonEndTurn, "partial")
	ch <- agent.Event{Type: agent.EventError, Err: "tool crashed"}
	close(ch)

	_, err := agent.Collect(ch)
	if !errors.Is(err, agent.ErrExecution) {
		t.Fatalf("Collect() error = %v, want ErrExecution", err)
	}
}

func TestCollect_EmptyStream(t *testing.T) {
	_, err := agent.Collect(stream())
	if !errors.Is(err, agent.ErrEmptyResult) {
		t.Fatalf("Collect() error = %v, want ErrEmptyResult", err)
	}
}

func TestCollect_IntermediateOnly(t *testing.T) {
	_, err := agent.Collect(stream(
		textMessage(agent.StopReasonToolUse, "still working"),
	))
	if !errors.Is(err, agent.ErrEmptyResult) {
		t.Fatalf("Collect() error = %v, want ErrEmptyResult", err)
	}
}
