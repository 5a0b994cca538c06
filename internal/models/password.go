package models

// ResetPasswordRequest represents the body for completing a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Token received by email
	// required: true
	Token *string `json:"token" form:"token" validate:"required"`

	// New password
	// required: true
	Password *string `json:"password" form:"password" validate:"required"`
}
