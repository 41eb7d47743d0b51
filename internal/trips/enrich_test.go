package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
)

type fakeFinder struct {
	photos map[string][]string
	errs   map[string]error
}

func (f *fakeFinder) FindPhotos(ctx context.Context, name string, location *Coordinates, apiKey string) ([]string, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	return f.photos[name], nil
}

func destinationPhotos(t *testing.T, plan *Plan) [][]string {
	t.Helper()

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var doc struct {
		Destinations []struct {
			Photos []string `json:"photos"`
		} `json:"destinations"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	photos := make([][]string, len(doc.Destinations))
	for i, dest := range doc.Destinations {
		photos[i] = dest.Photos
	}
	return photos
}

func testPlan(t *testing.T) *Plan {
	t.Helper()

	plan, err := NewDecoder().Decode(`{
		"destinations": [
			{"name": "Louvre Museum"},
			{"name": "Eiffel Tower"},
			{"name": "Notre-Dame"}
		]
	}`)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return plan
}

func TestEnricher_Enrich(t *testing.T) {
	finder := &fakeFinder{
		photos: map[string][]string{
			"Louvre Museum": {"https://photos.test/louvre-1", "https://photos.test/louvre-2"},
			"Eiffel Tower":  {"https://photos.test/eiffel-1"},
			"Notre-Dame":    {"https://photos.test/notredame-1"},
		},
	}

	plan := testPlan(t)
	enricher := NewEnricher(finder, "", slog.New(slog.DiscardHandler))
	enricher.Enrich(context.Background(), plan, "maps-key")

	photos := destinationPhotos(t, plan)
	if len(photos) != 3 {
		t.Fatalf("len(photos) = %d, want 3", len(photos))
	}
	if len(photos[0]) != 2 {
		t.Errorf("len(photos[0]) = %d, want 2", len(photos[0]))
	}
	if photos[1][0] != "https://photos.test/eiffel-1" {
		t.Errorf("photos[1][0] = %q, want %q", photos[1][0], "https://photos.test/eiffel-1")
	}
}

func TestEnricher_PartialFailure(t *testing.T) {
	finder := &fakeFinder{
		photos: map[string][]string{
			"Louvre Museum": {"https://photos.test/louvre-1"},
			"Notre-Dame":    {"https://photos.test/notredame-1"},
		},
		errs: map[string]error{
			"Eiffel Tower": fmt.Errorf("lookup timed out"),
		},
	}

	plan := testPlan(t)
	enricher := NewEnricher(finder, "", slog.New(slog.DiscardHandler))
	enricher.Enrich(context.Background(), plan, "maps-key")

	photos := destinationPhotos(t, plan)
	if len(photos) != 3 {
		t.Fatalf("len(photos) = %d, want 3", len(photos))
	}
	if len(photos[1]) != 0 {
		t.Errorf("len(photos[1]) = %d, want 0", len(photos[1]))
	}
	if len(photos[0]) != 1 || len(photos[2]) != 1 {
		t.Error("failed lookup should not affect other destinations")
	}
}

func TestEnricher_DefaultKey(t *testing.T) {
	finder := &fakeFinder{
		photos: map[string][]string{
			"Louvre Museum": {"https://photos.test/louvre-1"},
			"Eiffel Tower":  {"https://photos.test/eiffel-1"},
			"Notre-Dame":    {"https://photos.test/notredame-1"},
		},
	}

	plan := testPlan(t)
	enricher := NewEnricher(finder, "server-key", slog.New(slog.DiscardHandler))
	enricher.Enrich(context.Background(), plan, "")

	photos := destinationPhotos(t, plan)
	if len(photos[0]) != 1 {
		t.Error("server default key should enable enrichment")
	}
}

func TestEnricher_NoKey(t *testing.T) {
	plan := testPlan(t)
	enricher := NewEnricher(&fakeFinder{}, "", slog.New(slog.DiscardHandler))
	enricher.Enrich(context.Background(), plan, "")

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var doc struct {
		Destinations []map[string]any `json:"destinations"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for i, dest := range doc.Destinations {
		if _, ok := dest["photos"]; ok {
			t.Errorf("destination %d has photos without an API key", i)
		}
	}
}
