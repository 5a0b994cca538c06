package models

// LoginRequest represents the body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: test@test.com
	Email *string `json:"email" form:"email" validate:"required"`

	// required: true
	// example: Passw0rd
	Password *string `json:"password" form:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// example: Login successful
	Message string `json:"message"`

	// JWT token
	// example: JWT_TOKEN
	AccessToken string `json:"access_token"`
}
