package trips

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// fencePattern matches markdown code fences with or without a language tag.
var fencePattern = regexp.MustCompile("```[a-zA-Z]*\n?")

// Decoder turns raw agent output into a Plan, tolerating markdown fencing and
// missing identifiers. Identifier synthesis uses the injected clock so tests
// can pin timestamps.
type Decoder struct {
	now func() time.Time
}

func NewDecoder() *Decoder {
	return &Decoder{now: time.Now}
}

// Normalize strips markdown code fences and surrounding whitespace. Output
// that was never fenced passes through unchanged.
func (d *Decoder) Normalize(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// Decode parses the agent's output into a plan, synthesizing identifiers for
// the plan and any destinations that arrived without one.
func (d *Decoder) Decode(text string) (*Plan, error) {
	cleaned := d.Normalize(text)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, truncate(cleaned, 200))
	}
	// "null" unmarshals without error but leaves the map nil.
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, truncate(cleaned, 200))
	}

	millis := d.now().UnixMilli()

	if id, ok := doc["id"].(string); !ok || id == "" {
		doc["id"] = fmt.Sprintf("trip-%d", millis)
	}

	if destinations, ok := doc["destinations"].([]any); ok {
		for i, entry := range destinations {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := fields["id"].(string); !ok || id == "" {
				fields["id"] = fmt.Sprintf("dest-%d-%d", millis, i)
			}
		}
	}

	return &Plan{doc: doc}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
