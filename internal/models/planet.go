package models

// Planet represents a planet row in the database
// swagger:model Planet
type Planet struct {
	PlanetID   int64   `json:"planet_id" db:"planet_id"`     // Primary key
	PlanetName string  `json:"planet_name" db:"planet_name"` // e.g. Mercury
	PlanetType string  `json:"planet_type" db:"planet_type"` // e.g. Class D
	HomeStar   string  `json:"home_star" db:"home_star"`     // e.g. sol
	Mass       float64 `json:"mass" db:"mass"`               // Mass in kg
	Radius     float64 `json:"radius" db:"radius"`           // Radius in miles
	Distance   float64 `json:"distance" db:"distance"`       // Distance from the home star in miles
}
