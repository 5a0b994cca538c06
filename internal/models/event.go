package models

import "time"

// User event types
const (
	EventUserRegistered    = "user.registered"
	EventUserPasswordReset = "user.password_reset"
)

// UserEvent is published whenever a user record changes.
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
