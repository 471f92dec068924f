package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/homescout/listing-service/internal/app"
	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/utils"
)

const healthPingTimeout = 2 * time.Second

// HealthController checks storage connectivity.
type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := c.app.Ping(ctx); err != nil {
		utils.RespondErrorWithCode(w, r, http.StatusServiceUnavailable, utils.ErrCodeUnavailable, "Database unreachable", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
