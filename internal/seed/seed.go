// Package seed fills an empty database with the demo catalog and test account.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

// Catalog is the part of the planet service used by the seeder.
type Catalog interface {
	List(ctx context.Context) ([]models.Planet, error)
	Add(ctx context.Context, planet models.Planet) (*models.Planet, error)
}

// Registrar is the part of the auth service used by the seeder.
type Registrar interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error)
}

// Planets is the demo catalog.
var Planets = []models.Planet{
	{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
	{PlanetName: "Venus", PlanetType: "Class K", HomeStar: "sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
	{PlanetName: "Earth", PlanetType: "Class M", HomeStar: "sol", Mass: 5.972e25, Radius: 3959, Distance: 92.96e6},
}

// Test account credentials.
const (
	TestFirstName = "William"
	TestLastName  = "Herschel"
	TestEmail     = "test@test.com"
	TestPassword  = "Passw0rd"
)

// Run inserts the demo planets when the catalog is empty and registers the
// test user unless it already exists. Running it twice changes nothing.
func Run(ctx context.Context, catalog Catalog, users Registrar) error {
	existing, err := catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("list planets: %w", err)
	}
	if len(existing) == 0 {
		for _, p := range Planets {
			if _, err := catalog.Add(ctx, p); err != nil {
				return fmt.Errorf("add planet %s: %w", p.PlanetName, err)
			}
		}
		logger.Log.Infow("planets seeded", "count", len(Planets))
	} else {
		logger.Log.Infow("planets already present, skipping", "count", len(existing))
	}

	_, err = users.Register(ctx, TestFirstName, TestLastName, TestEmail, TestPassword)
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		logger.Log.Infow("test user already present, skipping", "email", TestEmail)
	case err != nil:
		return fmt.Errorf("register test user: %w", err)
	default:
		logger.Log.Infow("test user seeded", "email", TestEmail)
	}
	return nil
}
