package main

import (
	"github.com/gtz123456/Trip-Planner/internal/config"
	"github.com/gtz123456/Trip-Planner/internal/logger"
	"github.com/gtz123456/Trip-Planner/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack with logging and CORS.
func buildMiddleware(loggerSys logger.System, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.Logger(loggerSys.Logger()))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	return middlewareSys
}
