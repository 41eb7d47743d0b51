package places

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchPhotos_MissingFields(t *testing.T) {
	handler := NewHandler(testClient("http://unused"), slog.New(slog.DiscardHandler))

	req := httptest.NewRequest("POST", "/api/fetch-photos", strings.NewReader(`{"placeName":"Louvre Museum"}`))
	rec := httptest.NewRecorder()
	handler.FetchPhotos(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if result.Success || result.Error != "Missing required fields" {
		t.Errorf("envelope = %+v, want missing fields failure", result)
	}
}

func TestFetchPhotos_Success(t *testing.T) {
	srv := placesServer(t, `{
		"status": "OK",
		"candidates": [{"place_id": "pid", "name": "Louvre Museum", "photos": [{"photo_reference": "ref-1"}]}]
	}`, nil)
	defer srv.Close()

	handler := NewHandler(testClient(srv.URL), slog.New(slog.DiscardHandler))

	body := `{"placeName":"Louvre Museum","googleMapsApiKey":"maps-key"}`
	req := httptest.NewRequest("POST", "/api/fetch-photos", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.FetchPhotos(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want %d", rec.Code, http.StatusOK)
	}

	var result struct {
		Success bool     `json:"success"`
		Photos  []string `json:"photos"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if !result.Success || len(result.Photos) != 1 {
		t.Errorf("response = %+v, want success with one top-level photo", result)
	}
}

func TestPlaceholderImage(t *testing.T) {
	handler := NewHandler(testClient("http://unused"), slog.New(slog.DiscardHandler))

	req := httptest.NewRequest("GET", "/api/placeholder-image?category=Museum&name=Louvre", nil)
	rec := httptest.NewRecorder()
	handler.PlaceholderImage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want %q", ct, "image/svg+xml")
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q, want %q", cc, "public, max-age=86400")
	}

	body := rec.Body.String()
	if !strings.Contains(body, "#667eea") {
		t.Error("body missing Museum gradient color")
	}
	if !strings.Contains(body, "Louvre") {
		t.Error("body missing destination name")
	}
}

func TestPlaceholderImage_Defaults(t *testing.T) {
	handler := NewHandler(testClient("http://unused"), slog.New(slog.DiscardHandler))

	req := httptest.NewRequest("GET", "/api/placeholder-image", nil)
	rec := httptest.NewRecorder()
	handler.PlaceholderImage(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Attraction") || !strings.Contains(body, "Destination") {
		t.Error("body missing default category and name")
	}
}

func TestPlaceholderSVG_UnknownCategory(t *testing.T) {
	svg := PlaceholderSVG("Volcano", "Mount Etna")
	if !strings.Contains(svg, "#43e97b") {
		t.Error("unknown category should use Attraction gradient")
	}
	if !strings.Contains(svg, "Volcano") {
		t.Error("svg should keep the requested category label")
	}
}

func TestPlaceholderSVG_TruncatesLongNames(t *testing.T) {
	name := strings.Repeat("a", 60)
	svg := PlaceholderSVG("Park", name)
	if strings.Contains(svg, name) {
		t.Error("long name should be truncated")
	}
	if !strings.Contains(svg, strings.Repeat("a", 40)+"...") {
		t.Error("truncated name should end with ellipsis")
	}
}
