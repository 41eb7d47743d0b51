// Package trips provides the trip planning domain: request validation, task
// prompt composition, itinerary decoding, and photo enrichment.
package trips

import (
	"encoding/json"

	"github.com/gtz123456/Trip-Planner/pkg/decode"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is the typed view of one itinerary entry. The decoded plan
// document keeps every field the model produced; this view surfaces only the
// fields the service itself reads.
type Destination struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Category    string      `json:"category,omitempty"`
}

// Plan is a decoded trip plan. The underlying document stays untyped so that
// fields beyond the known shape pass through to the caller untouched. A plan
// lives for one request; nothing here is persisted.
type Plan struct {
	doc map[string]any
}

// ID returns the plan's identifier. Decoded plans always have one.
func (p *Plan) ID() string {
	id, _ := p.doc["id"].(string)
	return id
}

// Summary returns the plan's human-readable overview, if present.
func (p *Plan) Summary() string {
	summary, _ := p.doc["summary"].(string)
	return summary
}

// Destinations returns typed views of the plan's destinations in document
// order. Entries that are not objects yield zero views but keep their
// position, so indexes always line up with the document.
func (p *Plan) Destinations() []Destination {
	raw, _ := p.doc["destinations"].([]any)

	views := make([]Destination, len(raw))
	for i, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if view, err := decode.FromMap[Destination](fields); err == nil {
			views[i] = view
		}
	}
	return views
}

// SetPhotos attaches photo URLs to the destination at the given position.
// Positions outside the document are ignored.
func (p *Plan) SetPhotos(index int, photos []string) {
	raw, _ := p.doc["destinations"].([]any)
	if index < 0 || index >= len(raw) {
		return
	}
	if entry, ok := raw[index].(map[string]any); ok {
		entry["photos"] = photos
	}
}

// MarshalJSON emits the underlying document, repaired fields included.
func (p *Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.doc)
}
