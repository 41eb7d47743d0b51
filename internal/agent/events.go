// Package agent drives tool-augmented model task execution. A session owns a
// model client plus an attached crawling tool and exposes one task run as an
// ordered stream of events.
package agent

import "encoding/json"

// EventType tags the variants of the session event stream.
type EventType string

const (
	// EventMessage carries a completed assistant message.
	EventMessage EventType = "message"

	// EventError carries a fatal execution failure; no further events follow it.
	EventError EventType = "error"
)

// Stop reasons reported by the model on a completed message.
const (
	StopReasonEndTurn = "end_turn"
	StopReasonToolUse = "tool_use"
)

// Content block kinds. Only text blocks are meaningful to result collection;
// tool blocks exist for the tool-use loop.
const (
	ContentText       = "text"
	ContentToolUse    = "tool_use"
	ContentToolResult = "tool_result"
)

// ContentBlock is one element of a message's ordered content sequence.
type ContentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

// Message is the payload of a message event.
type Message struct {
	Role       string         `json:"role"`
	StopReason string         `json:"stop_reason"`
	Content    []ContentBlock `json:"content"`
}

// Text returns the message's first text content block.
func (m *Message) Text() (string, bool) {
	for _, block := range m.Content {
		if block.Type == ContentText {
			return block.Text, true
		}
	}
	return "", false
}

// Event is one item of a session's event stream. Consumers must ignore types
// they do not recognize.
type Event struct {
	Type    EventType
	Message *Message // set when Type is EventMessage
	Err     string   // set when Type is EventError
}
