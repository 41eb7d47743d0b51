package main

import (
	"net/http"

	"github.com/gtz123456/Trip-Planner/internal/logger"
	"github.com/gtz123456/Trip-Planner/internal/places"
	"github.com/gtz123456/Trip-Planner/internal/routes"
	"github.com/gtz123456/Trip-Planner/internal/trips"
	"github.com/gtz123456/Trip-Planner/pkg/handlers"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, tripSys trips.System, placesClient *places.Client, loggerSys logger.System) {
	r.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: "/health",
		Handler: handleHealthCheck,
	})

	r.RegisterGroup(trips.NewHandler(tripSys, loggerSys.Logger()).Routes())
	r.RegisterGroup(places.NewHandler(placesClient, loggerSys.Logger()).Routes())
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
