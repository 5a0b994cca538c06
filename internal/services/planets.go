package services

//go:generate mockgen -source=planets.go -destination=planets_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
)

// PlanetReader defines read operations for planets.
type PlanetReader interface {
	List(ctx context.Context) ([]models.Planet, error)
}

// PlanetWriter defines write operations for planets.
type PlanetWriter interface {
	Save(ctx context.Context, planet *models.Planet) error
}

// PlanetService exposes the planet catalog.
type PlanetService struct {
	reader PlanetReader
	writer PlanetWriter
}

// NewPlanetService creates a new PlanetService. writer may be nil for read-only use.
func NewPlanetService(reader PlanetReader, writer PlanetWriter) *PlanetService {
	return &PlanetService{
		reader: reader,
		writer: writer,
	}
}

// List returns every planet in the store.
func (svc *PlanetService) List(ctx context.Context) ([]models.Planet, error) {
	planets, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list planets", "err", err)
		return nil, err
	}
	return planets, nil
}

// Add stores a new planet and returns it with its id.
func (svc *PlanetService) Add(ctx context.Context, planet models.Planet) (*models.Planet, error) {
	if err := svc.writer.Save(ctx, &planet); err != nil {
		logger.Log.Errorw("failed to save planet", "planet", planet.PlanetName, "err", err)
		return nil, err
	}
	return &planet, nil
}
