package trips

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gtz123456/Trip-Planner/internal/routes"
	"github.com/gtz123456/Trip-Planner/pkg/handlers"
)

type Handler struct {
	system System
	logger *slog.Logger
}

func NewHandler(system System, logger *slog.Logger) *Handler {
	return &Handler{
		system: system,
		logger: logger.With("handler", "trips"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api",
		Description: "Trip planning operations",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/plan-trip", Handler: h.PlanTrip},
		},
	}
}

func (h *Handler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var request PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrValidation)
		return
	}

	if err := request.Validate(); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	plan, err := h.system.Plan(r.Context(), request)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondData(w, http.StatusOK, plan)
}
