package trips

import (
	"context"
	"log/slog"
	"sync"
)

// PhotoFinder looks up photo URLs for a named place. Implementations must be
// safe for concurrent use.
type PhotoFinder interface {
	FindPhotos(ctx context.Context, name string, location *Coordinates, apiKey string) ([]string, error)
}

// Enricher attaches photos to every destination of a plan. Lookups run
// concurrently and failures degrade to an empty photo list rather than
// failing the plan.
type Enricher struct {
	finder     PhotoFinder
	defaultKey string
	logger     *slog.Logger
}

func NewEnricher(finder PhotoFinder, defaultKey string, logger *slog.Logger) *Enricher {
	return &Enricher{
		finder:     finder,
		defaultKey: defaultKey,
		logger:     logger.With("system", "enricher"),
	}
}

// Enrich fans out one photo lookup per destination and merges the results
// back by position. A request-scoped key takes precedence over the
// server-side default; without either the plan is returned untouched.
func (e *Enricher) Enrich(ctx context.Context, plan *Plan, apiKey string) {
	if apiKey == "" {
		apiKey = e.defaultKey
	}
	if apiKey == "" {
		return
	}

	destinations := plan.Destinations()
	if len(destinations) == 0 {
		return
	}

	photos := make([][]string, len(destinations))

	var wg sync.WaitGroup
	for i, dest := range destinations {
		if dest.Name == "" {
			continue
		}

		wg.Add(1)
		go func(i int, dest Destination) {
			defer wg.Done()

			var location *Coordinates
			if dest.Coordinates != (Coordinates{}) {
				location = &dest.Coordinates
			}

			found, err := e.finder.FindPhotos(ctx, dest.Name, location, apiKey)
			if err != nil {
				e.logger.Warn("photo lookup failed",
					"destination", dest.Name,
					"error", err,
				)
				return
			}
			photos[i] = found
		}(i, dest)
	}
	wg.Wait()

	for i := range destinations {
		if photos[i] == nil {
			photos[i] = []string{}
		}
		plan.SetPhotos(i, photos[i])
	}
}
