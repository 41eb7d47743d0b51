package trips

import (
	"context"
	"log/slog"

	"github.com/gtz123456/Trip-Planner/internal/agent"
)

// TaskSession runs one agent task and streams its events.
type TaskSession interface {
	Run(ctx context.Context, task string) <-chan agent.Event
	Close() error
}

// SessionFactory creates a session bound to the given credentials. Each plan
// request gets its own session and tool process.
type SessionFactory func(ctx context.Context, creds agent.Credentials) (TaskSession, error)

// System plans trips.
type System interface {
	Plan(ctx context.Context, request PlanRequest) (*Plan, error)
}

type planner struct {
	sessions SessionFactory
	decoder  *Decoder
	enricher *Enricher
	logger   *slog.Logger
}

func NewSystem(sessions SessionFactory, decoder *Decoder, enricher *Enricher, logger *slog.Logger) System {
	return &planner{
		sessions: sessions,
		decoder:  decoder,
		enricher: enricher,
		logger:   logger.With("system", "trips"),
	}
}

// Plan drives the full pipeline: run the agent task, collect its final
// output, decode the itinerary, and enrich destinations with photos.
func (p *planner) Plan(ctx context.Context, request PlanRequest) (*Plan, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session, err := p.sessions(ctx, agent.Credentials{
		Anthropic: request.APIKeys.Anthropic,
		Firecrawl: request.APIKeys.Firecrawl,
	})
	if err != nil {
		return nil, err
	}
	defer session.Close()

	p.logger.Info("planning trip", "input_length", len(request.UserInput))

	result, err := agent.Collect(session.Run(ctx, taskPrompt(request.UserInput)))
	if err != nil {
		return nil, err
	}

	plan, err := p.decoder.Decode(result)
	if err != nil {
		return nil, err
	}

	p.enricher.Enrich(ctx, plan, request.APIKeys.GoogleMaps)

	p.logger.Info("trip planned",
		"plan", plan.ID(),
		"destinations", len(plan.Destinations()),
	)
	return plan, nil
}
