package places

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gtz123456/Trip-Planner/internal/routes"
	"github.com/gtz123456/Trip-Planner/internal/trips"
	"github.com/gtz123456/Trip-Planner/pkg/handlers"
)

var errMissingFields = errors.New("Missing required fields")

type photosRequest struct {
	PlaceName        string             `json:"placeName"`
	Location         *trips.Coordinates `json:"location,omitempty"`
	GoogleMapsAPIKey string             `json:"googleMapsApiKey"`
}

// photosResponse keeps photos at the top level next to the success flag,
// the shape existing consumers of this endpoint read.
type photosResponse struct {
	Success bool     `json:"success"`
	Photos  []string `json:"photos"`
}

type diagnosticRequest struct {
	APIKey    string `json:"apiKey"`
	PlaceName string `json:"placeName"`
}

type diagnosticResponse struct {
	Status     string          `json:"status"`
	Place      *diagnosticHit  `json:"place,omitempty"`
	PhotoCount int             `json:"photoCount"`
	PhotoURL   string          `json:"photoUrl,omitempty"`
	Message    string          `json:"message,omitempty"`
	FullData   *searchResponse `json:"fullData"`
}

type diagnosticHit struct {
	Name    string `json:"name"`
	PlaceID string `json:"placeId"`
}

type Handler struct {
	client *Client
	logger *slog.Logger
}

func NewHandler(client *Client, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger.With("handler", "places"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api",
		Description: "Place photo operations",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/fetch-photos", Handler: h.FetchPhotos},
			{Method: http.MethodGet, Pattern: "/placeholder-image", Handler: h.PlaceholderImage},
			{Method: http.MethodGet, Pattern: "/test-places", Handler: h.TestPlacesUsage},
			{Method: http.MethodPost, Pattern: "/test-places", Handler: h.TestPlaces},
		},
	}
}

func (h *Handler) FetchPhotos(w http.ResponseWriter, r *http.Request) {
	var request photosRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errMissingFields)
		return
	}

	if request.PlaceName == "" || request.GoogleMapsAPIKey == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errMissingFields)
		return
	}

	photos, err := h.client.FindPhotos(r.Context(), request.PlaceName, request.Location, request.GoogleMapsAPIKey)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadGateway, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, photosResponse{Success: true, Photos: photos})
}

func (h *Handler) PlaceholderImage(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "Attraction"
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "Destination"
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(PlaceholderSVG(category, name)))
}

// TestPlacesUsage describes the diagnostic endpoint.
func (h *Handler) TestPlacesUsage(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "POST {apiKey, placeName} to test a Google Maps API key",
	})
}

// TestPlaces checks a Google Maps API key against the Places API and reports
// what the key can see for the given place.
func (h *Handler) TestPlaces(w http.ResponseWriter, r *http.Request) {
	var request diagnosticRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errMissingFields)
		return
	}

	if request.APIKey == "" || request.PlaceName == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errMissingFields)
		return
	}

	result, err := h.client.findPlace(r.Context(), request.PlaceName, nil, request.APIKey)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadGateway, err)
		return
	}

	response := diagnosticResponse{
		Status:   result.Status,
		Message:  result.ErrorMessage,
		FullData: result,
	}

	if result.Status == "OK" && len(result.Candidates) > 0 {
		place := result.Candidates[0]
		response.Place = &diagnosticHit{Name: place.Name, PlaceID: place.PlaceID}
		response.PhotoCount = len(place.Photos)
		if len(place.Photos) > 0 {
			response.PhotoURL = h.client.photoURL(place.Photos[0].PhotoReference, request.APIKey)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
