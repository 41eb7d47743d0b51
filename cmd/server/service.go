package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/gtz123456/Trip-Planner/internal/agent"
	"github.com/gtz123456/Trip-Planner/internal/config"
	"github.com/gtz123456/Trip-Planner/internal/logger"
	"github.com/gtz123456/Trip-Planner/internal/places"
	"github.com/gtz123456/Trip-Planner/internal/routes"
	"github.com/gtz123456/Trip-Planner/internal/server"
	"github.com/gtz123456/Trip-Planner/internal/trips"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger logger.System
	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())

	loggerSys := logger.New(&cfg.Logging)
	routeSys := routes.New(loggerSys.Logger())

	placesClient := places.NewClient(&cfg.Places, loggerSys.Logger())
	enricher := trips.NewEnricher(placesClient, cfg.Places.APIKey, loggerSys.Logger())

	sessions := func(ctx context.Context, creds agent.Credentials) (trips.TaskSession, error) {
		return agent.NewSession(ctx, &cfg.Agent, creds, loggerSys.Logger())
	}

	tripSys := trips.NewSystem(sessions, trips.NewDecoder(), enricher, loggerSys.Logger())

	middlewareSys := buildMiddleware(loggerSys, cfg)
	registerRoutes(routeSys, tripSys, placesClient, loggerSys)
	handler := middlewareSys.Apply(routeSys.Build())

	serverSys := server.New(&cfg.Server, handler, loggerSys.Logger())

	return &Service{
		ctx:    ctx,
		cancel: cancel,
		logger: loggerSys,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Logger().Info("starting service")

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Logger().Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Logger().Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Logger().Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
