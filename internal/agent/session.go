package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gtz123456/Trip-Planner/internal/config"
)

// eventBuffer bounds the number of undelivered events a running task can
// accumulate before the producer blocks on the consumer.
const eventBuffer = 16

// Credentials carries the per-request keys used to run one planning session.
type Credentials struct {
	Anthropic string
	Firecrawl string
}

// Session is one agent execution context: a model client plus an attached
// crawling tool process. Sessions are single-use and request-scoped; Close
// must be called on every exit path to release the tool process.
type Session struct {
	client *messagesClient
	tools  toolRuntime
	cfg    *config.AgentConfig
	logger *slog.Logger
}

// NewSession establishes an execution context for one task. The crawling tool
// server is spawned and registered before anything is submitted to the model;
// if that fails, no partial session is left runnable.
func NewSession(ctx context.Context, cfg *config.AgentConfig, creds Credentials, logger *slog.Logger) (*Session, error) {
	toolKey := creds.Firecrawl
	if toolKey == "" {
		toolKey = cfg.Tool.APIKey
	}

	tools, err := newMCPRuntime(ctx, &cfg.Tool, toolKey)
	if err != nil {
		return nil, err
	}

	modelKey := creds.Anthropic
	if modelKey == "" {
		modelKey = cfg.APIKey
	}

	return &Session{
		client: newMessagesClient(cfg.BaseURL, modelKey),
		tools:  tools,
		cfg:    cfg,
		logger: logger.With("system", "agent"),
	}, nil
}

// Close releases the session's tool process.
func (s *Session) Close() error {
	return s.tools.Close()
}

// Run submits the task and returns the stream of events the execution
// produces, in order. The call does not block until completion: the caller
// drains the returned channel, which is closed when the task ends. Cancelling
// the context stops the run.
func (s *Session) Run(ctx context.Context, task string) <-chan Event {
	events := make(chan Event, eventBuffer)
	go s.run(ctx, task, events)
	return events
}

func (s *Session) run(ctx context.Context, task string, events chan<- Event) {
	defer close(events)

	messages := []messageParam{{Role: "user", Content: task}}

	for turn := 0; turn < s.cfg.MaxToolTurns; turn++ {
		msg, err := s.client.createMessage(ctx, &messagesRequest{
			Model:     s.cfg.Model,
			MaxTokens: s.cfg.MaxTokens,
			Messages:  messages,
			Tools:     s.tools.Tools(),
		})
		if err != nil {
			s.emit(ctx, events, Event{Type: EventError, Err: err.Error()})
			return
		}

		s.logger.Debug("model turn complete", "turn", turn, "stop_reason", msg.StopReason)
		s.emit(ctx, events, Event{Type: EventMessage, Message: msg})

		if msg.StopReason != StopReasonToolUse {
			return
		}

		messages = append(messages,
			messageParam{Role: "assistant", Content: msg.Content},
			messageParam{Role: "user", Content: s.executeTools(ctx, msg.Content)},
		)
	}

	s.emit(ctx, events, Event{
		Type: EventError,
		Err:  fmt.Sprintf("task exceeded %d tool turns", s.cfg.MaxToolTurns),
	})
}

// executeTools runs every tool_use block of an assistant message and returns
// the matching tool_result blocks. Tool failures are reported back to the
// model rather than aborting the task; it may recover or work around them.
func (s *Session) executeTools(ctx context.Context, blocks []ContentBlock) []ContentBlock {
	var results []ContentBlock
	for _, block := range blocks {
		if block.Type != ContentToolUse {
			continue
		}

		result := ContentBlock{Type: ContentToolResult, ToolUseID: block.ID}

		text, err := s.tools.Call(ctx, block.Name, block.Input)
		if err != nil {
			s.logger.Warn("tool call failed", "tool", block.Name, "error", err)
			result.Content = err.Error()
			result.IsError = true
		} else {
			result.Content = text
		}

		results = append(results, result)
	}
	return results
}

func (s *Session) emit(ctx context.Context, events chan<- Event, event Event) {
	select {
	case events <- event:
	case <-ctx.Done():
	}
}
