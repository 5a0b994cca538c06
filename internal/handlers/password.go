package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

// PasswordRecoverer starts password recovery for an email.
type PasswordRecoverer interface {
	RecoverPassword(ctx context.Context, email string) error
}

// PasswordResetter completes a password reset.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// NewRetrievePasswordHandler returns an HTTP handler that emails a reset token.
// @Summary Request a password reset
// @Description Sends a single-use reset token to the address if it is registered
// @Tags auth
// @Produce json
// @Param email path string true "Registered email"
// @Success 200 {object} models.MessageResponse "Reset instructions sent"
// @Failure 400 {object} models.MessageResponse "Malformed email escape"
// @Failure 404 {object} models.MessageResponse "That email doesn't exist"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /retrieve_password/{email} [get]
func NewRetrievePasswordHandler(svc PasswordRecoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := pathParam(r, "email")
		if err != nil {
			writeMessage(w, r, http.StatusBadRequest, "invalid email")
			return
		}

		err = svc.RecoverPassword(r.Context(), email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeMessage(w, r, http.StatusNotFound, "That email doesn't exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, r, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeMessage(w, r, http.StatusOK, "Password reset instructions sent to "+email)
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password from a reset token.
// @Summary Reset password
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param resetPasswordRequest body models.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} models.MessageResponse "Password updated"
// @Failure 400 {object} models.MessageResponse "Invalid request or token"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /reset_password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest
		if msg, ok := decodeRequest(r, &req); !ok {
			writeMessage(w, r, http.StatusBadRequest, msg)
			return
		}

		err := svc.ResetPassword(r.Context(), *req.Token, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidResetToken),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeMessage(w, r, http.StatusBadRequest, "Invalid or expired reset token")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeMessage(w, r, http.StatusBadRequest, msgPasswordTooLong)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, r, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeMessage(w, r, http.StatusOK, "Password has been reset")
	}
}
