package models

// MessageResponse is the generic response body carrying a human readable message
// swagger:model MessageResponse
type MessageResponse struct {
	// example: That email already exists
	Message string `json:"message"`
}
