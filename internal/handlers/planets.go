package handlers

//go:generate mockgen -source=planets.go -destination=planets_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
)

// PlanetLister lists the planet catalog.
type PlanetLister interface {
	List(ctx context.Context) ([]models.Planet, error)
}

// NewPlanetsHandler returns an HTTP handler listing all planets.
// @Summary List planets
// @Tags planets
// @Produce json
// @Success 200 {array} models.Planet
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /planets [get]
func NewPlanetsHandler(svc PlanetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planets, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, r, http.StatusInternalServerError, msgInternalServer)
			return
		}
		if planets == nil {
			planets = []models.Planet{}
		}
		writeJSON(w, r, http.StatusOK, planets)
	}
}
