package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.MessageResponse "Invalid request or password longer than 72 bytes"
// @Failure 409 {object} models.MessageResponse "That email already exists"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if msg, ok := decodeRequest(r, &req); !ok {
			writeMessage(w, r, http.StatusBadRequest, msg)
			return
		}

		user, err := svc.Register(r.Context(), *req.FirstName, *req.LastName, *req.Email, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, r, http.StatusConflict, "That email already exists")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeMessage(w, r, http.StatusBadRequest, msgPasswordTooLong)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, r, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, r, http.StatusCreated, models.RegisterResponse{
			Message: "user has been created successfully and added to db",
			User:    user.Public(),
		})
	}
}
