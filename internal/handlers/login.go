package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token whose subject is the email
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.MessageResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Bad email or password"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if msg, ok := decodeRequest(r, &req); !ok {
			writeMessage(w, r, http.StatusBadRequest, msg)
			return
		}

		token, err := svc.Login(r.Context(), *req.Email, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, r, http.StatusUnauthorized, "Bad email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, r, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, models.LoginResponse{
			Message:     "Login successful",
			AccessToken: token,
		})
	}
}
