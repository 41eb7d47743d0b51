package agent

import "fmt"

// Collect drains a session event stream in arrival order and returns the
// final completion text.
//
// An error event aborts collection immediately; events behind it are never
// observed. A message event whose stop reason is end_turn overwrites the
// accumulated result with its text block, so if the model emits more than one
// completion the last one wins. Intermediate messages and unrecognized event
// types are ignored. A stream that ends without any completion text yields
// ErrEmptyResult.
func Collect(events <-chan Event) (string, error) {
	var final string

	for event := range events {
		switch event.Type {
		case EventError:
			return "", fmt.Errorf("%w: %s", ErrExecution, event.Err)
		case EventMessage:
			if event.Message == nil || event.Message.StopReason != StopReasonEndTurn {
				continue
			}
			if text, ok := event.Message.Text(); ok {
				final = text
			}
		}
	}

	if final == "" {
		return "", ErrEmptyResult
	}
	return final, nil
}
