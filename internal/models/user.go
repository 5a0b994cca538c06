package models

import "time"

// User represents a user record in the database.
// PasswordHash never leaves the service: use Public for responses.
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key, assigned by the store
	FirstName    string    `json:"first_name" db:"first_name"` // Display first name
	LastName     string    `json:"last_name" db:"last_name"`   // Display last name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	CreatedAt    time.Time `json:"-" db:"created_at"`          // Creation timestamp
	UpdatedAt    time.Time `json:"-" db:"updated_at"`          // Last update timestamp
}

// PublicUser is the serialized view of a user.
// swagger:model PublicUser
type PublicUser struct {
	// example: 1
	ID int64 `json:"id"`
	// example: William
	FirstName string `json:"first_name"`
	// example: Herschel
	LastName string `json:"last_name"`
	// example: test@test.com
	Email string `json:"email"`
}

// Public returns the public fields of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
