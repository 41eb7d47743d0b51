package trips

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func fixedDecoder(millis int64) *Decoder {
	return &Decoder{now: func() time.Time { return time.UnixMilli(millis) }}
}

func TestDecoder_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare json", `{"summary":"test"}`},
		{"json fence", "```json\n{\"summary\":\"test\"}\n```"},
		{"bare fence", "```\n{\"summary\":\"test\"}\n```"},
		{"fence with whitespace", "  ```json\n{\"summary\":\"test\"}\n```  "},
	}

	decoder := NewDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decoder.Normalize(tt.input)
			if got != `{"summary":"test"}` {
				t.Errorf("Normalize() = %q, want %q", got, `{"summary":"test"}`)
			}
		})
	}
}

func TestDecoder_Decode_SynthesizesIDs(t *testing.T) {
	decoder := fixedDecoder(1700000000000)

	plan, err := decoder.Decode(`{
		"summary": "A day at the Louvre",
		"destinations": [
			{"name": "Louvre Museum", "coordinates": {"lat": 48.8606, "lng": 2.3376}, "category": "Museum"}
		]
	}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if plan.ID() != "trip-1700000000000" {
		t.Errorf("ID() = %q, want %q", plan.ID(), "trip-1700000000000")
	}

	destinations := plan.Destinations()
	if len(destinations) != 1 {
		t.Fatalf("len(Destinations()) = %d, want 1", len(destinations))
	}
	if destinations[0].ID != "dest-1700000000000-0" {
		t.Errorf("Destination ID = %q, want %q", destinations[0].ID, "dest-1700000000000-0")
	}
	if match, _ := regexp.MatchString(`^dest-\d+-0$`, destinations[0].ID); !match {
		t.Errorf("Destination ID %q does not match dest-<millis>-<index>", destinations[0].ID)
	}
}

func TestDecoder_Decode_KeepsExistingIDs(t *testing.T) {
	decoder := fixedDecoder(1700000000000)

	plan, err := decoder.Decode(`{
		"id": "trip-custom",
		"destinations": [
			{"id": "dest-custom", "name": "Eiffel Tower"},
			{"name": "Notre-Dame"}
		]
	}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if plan.ID() != "trip-custom" {
		t.Errorf("ID() = %q, want %q", plan.ID(), "trip-custom")
	}

	destinations := plan.Destinations()
	if destinations[0].ID != "dest-custom" {
		t.Errorf("Destinations()[0].ID = %q, want %q", destinations[0].ID, "dest-custom")
	}
	if destinations[1].ID != "dest-1700000000000-1" {
		t.Errorf("Destinations()[1].ID = %q, want %q", destinations[1].ID, "dest-1700000000000-1")
	}
}

func TestDecoder_Decode_PreservesOrder(t *testing.T) {
	plan, err := NewDecoder().Decode(`{
		"destinations": [
			{"name": "first"},
			{"name": "second"},
			{"name": "third"}
		]
	}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	for i, dest := range plan.Destinations() {
		if dest.Name != want[i] {
			t.Errorf("Destinations()[%d].Name = %q, want %q", i, dest.Name, want[i])
		}
	}
}

func TestDecoder_Decode_Invalid(t *testing.T) {
	_, err := NewDecoder().Decode("I could not produce a plan, sorry.")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Decode() error = %v, want ErrDecode", err)
	}
}

func TestDecoder_Decode_NullDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare null", "null"},
		{"fenced null", "```json\nnull\n```"},
	}

	decoder := NewDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Decode(tt.input)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("Decode(%q) error = %v, want ErrDecode", tt.input, err)
			}
		})
	}
}

func TestDecoder_Decode_FencedWithIDs(t *testing.T) {
	plan, err := NewDecoder().Decode("```json\n{\"id\":\"trip-1\",\"summary\":\"ok\",\"destinations\":[]}\n```")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if plan.Summary() != "ok" {
		t.Errorf("Summary() = %q, want %q", plan.Summary(), "ok")
	}
}
