package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/middlewares"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

// Profiler looks up the authenticated user.
type Profiler interface {
	Profile(ctx context.Context, email string) (*models.User, error)
}

// NewProfileHandler returns the public fields of the token holder.
// Must be mounted behind middlewares.AuthMiddleware.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PublicUser
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 404 {object} models.MessageResponse "User not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /profile [get]
func NewProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := middlewares.SubjectFromContext(r.Context())
		if !ok {
			writeMessage(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.Profile(r.Context(), email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeMessage(w, r, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, r, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, user.Public())
	}
}
