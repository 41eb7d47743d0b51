// Package places resolves destination names to photo URLs through the Google
// Places API, with an Unsplash fallback when no photos can be found.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/gtz123456/Trip-Planner/internal/config"
	"github.com/gtz123456/Trip-Planner/internal/trips"
)

type searchResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Candidates   []candidate `json:"candidates"`
}

type candidate struct {
	PlaceID string     `json:"place_id"`
	Name    string     `json:"name"`
	Photos  []photoRef `json:"photos"`
}

type photoRef struct {
	PhotoReference string `json:"photo_reference"`
}

// Client looks up place photos. Results are cached per key and place name so
// repeated destinations across requests do not re-hit the API.
type Client struct {
	cfg    *config.PlacesConfig
	httpc  *http.Client
	cache  *cache.Cache
	logger *slog.Logger
}

func NewClient(cfg *config.PlacesConfig, logger *slog.Logger) *Client {
	ttl := cfg.CacheTTLDuration()
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{},
		cache:  cache.New(ttl, 2*ttl),
		logger: logger.With("system", "places"),
	}
}

// FindPhotos returns photo URLs for the named place. A lookup that reaches
// the API but finds nothing degrades to a single fallback image; only
// transport failures return an error.
func (c *Client) FindPhotos(ctx context.Context, name string, location *trips.Coordinates, apiKey string) ([]string, error) {
	key := cacheKey(apiKey, name, location)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]string), nil
	}

	photos, err := c.lookup(ctx, name, location, apiKey)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(key, photos)
	return photos, nil
}

func (c *Client) lookup(ctx context.Context, name string, location *trips.Coordinates, apiKey string) ([]string, error) {
	result, err := c.findPlace(ctx, name, location, apiKey)
	if err != nil {
		return nil, err
	}

	if result.Status == "REQUEST_DENIED" {
		c.logger.Warn("place search denied",
			"place", name,
			"message", result.ErrorMessage,
		)
		return []string{fallbackURL(name)}, nil
	}

	if result.Status != "OK" || len(result.Candidates) == 0 {
		c.logger.Debug("no place found",
			"place", name,
			"status", result.Status,
		)
		return []string{fallbackURL(name)}, nil
	}

	refs := result.Candidates[0].Photos
	if len(refs) == 0 {
		return []string{fallbackURL(name)}, nil
	}
	if len(refs) > c.cfg.MaxPhotos {
		refs = refs[:c.cfg.MaxPhotos]
	}

	return lo.Map(refs, func(ref photoRef, _ int) string {
		return c.photoURL(ref.PhotoReference, apiKey)
	}), nil
}

func (c *Client) findPlace(ctx context.Context, name string, location *trips.Coordinates, apiKey string) (*searchResponse, error) {
	params := url.Values{}
	params.Set("input", name)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name,photos")
	params.Set("key", apiKey)
	if location != nil {
		params.Set("locationbias", fmt.Sprintf("circle:5000@%s,%s",
			strconv.FormatFloat(location.Lat, 'f', -1, 64),
			strconv.FormatFloat(location.Lng, 'f', -1, 64),
		))
	}

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/maps/api/place/findplacefromtext/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build place search request: %w", err)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search failed: %w", err)
	}
	defer res.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode place search response: %w", err)
	}

	return &result, nil
}

func (c *Client) photoURL(reference, apiKey string) string {
	return fmt.Sprintf("%s/maps/api/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.PhotoMaxWidth, reference, apiKey)
}

// cacheKey scopes cached lookups to the credential, place name, and bias
// location. Same-named places in different cities must not share an entry.
func cacheKey(apiKey, name string, location *trips.Coordinates) string {
	key := apiKey + "|" + name
	if location != nil {
		key += "|" + strconv.FormatFloat(location.Lat, 'f', -1, 64) +
			"," + strconv.FormatFloat(location.Lng, 'f', -1, 64)
	}
	return key
}

func fallbackURL(name string) string {
	return "https://source.unsplash.com/800x600/?" + url.PathEscape(name)
}
