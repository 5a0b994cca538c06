package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
)

type PlanetReadRepository struct {
	db *sqlx.DB
}

func NewPlanetReadRepository(db *sqlx.DB) *PlanetReadRepository {
	return &PlanetReadRepository{db: db}
}

// List returns every planet in insertion order.
func (r *PlanetReadRepository) List(ctx context.Context) ([]models.Planet, error) {
	const query = `
		SELECT planet_id, planet_name, planet_type, home_star, mass, radius, distance
		FROM planets
		ORDER BY planet_id
	`

	planets := []models.Planet{}
	err := r.db.SelectContext(ctx, &planets, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(planets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return planets, nil
}

type PlanetWriteRepository struct {
	db *sqlx.DB
}

func NewPlanetWriteRepository(db *sqlx.DB) *PlanetWriteRepository {
	return &PlanetWriteRepository{db: db}
}

// Save inserts a planet and sets its generated id.
func (r *PlanetWriteRepository) Save(ctx context.Context, planet *models.Planet) error {
	const query = `
		INSERT INTO planets (planet_name, planet_type, home_star, mass, radius, distance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING planet_id
	`
	args := []any{planet.PlanetName, planet.PlanetType, planet.HomeStar, planet.Mass, planet.Radius, planet.Distance}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&planet.PlanetID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", planet.PlanetID,
		"error", err,
	)

	return err
}
