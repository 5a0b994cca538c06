package models

// RegisterRequest represents the body for user registration.
// Accepted as JSON or application/x-www-form-urlencoded.
// Fields are pointers so that a present but empty value passes "required".
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: William
	FirstName *string `json:"first_name" form:"first_name" validate:"required"`

	// required: true
	// example: Herschel
	LastName *string `json:"last_name" form:"last_name" validate:"required"`

	// required: true
	// example: test@test.com
	Email *string `json:"email" form:"email" validate:"required"`

	// required: true
	// example: Passw0rd
	Password *string `json:"password" form:"password" validate:"required"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// example: user has been created successfully and added to db
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}
