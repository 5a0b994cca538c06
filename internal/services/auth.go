package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/planetary-api/internal/logger"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("email does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

const resetEmailSubject = "Planetary API password reset"

// dummyHash is compared against when the email is unknown, so that a missing
// user costs the same bcrypt work as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("planetary-api"), bcrypt.DefaultCost)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// ResetTokenStore keeps single-use password reset tokens.
type ResetTokenStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}

// Notifier delivers outbound email.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EventPublisher announces user lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.UserEvent) error
}

// AuthService handles registration, login and password recovery.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	jwt       JWTGenerator
	tokens    ResetTokenStore
	notifier  Notifier
	publisher EventPublisher
	resetTTL  time.Duration
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	tokens ResetTokenStore,
	notifier Notifier,
	publisher EventPublisher,
	resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		jwt:       jwt,
		tokens:    tokens,
		notifier:  notifier,
		publisher: publisher,
		resetTTL:  resetTTL,
	}
}

// Register creates a new user. The email must not be registered yet.
func (svc *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			logger.Log.Infow("user already exists", "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publish(ctx, models.EventUserRegistered, user)
	return user, nil
}

// Login authenticates a user and returns a JWT token whose subject is the email.
// Unknown email and wrong password are reported identically.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// RecoverPassword emails a single-use reset token to a registered address.
// The stored password is never sent.
func (svc *AuthService) RecoverPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Infow("password recovery for unknown email", "email", email)
		return ErrUserDoesNotExist
	}

	token := uuid.NewString()
	if err := svc.tokens.Save(ctx, token, user.Email, svc.resetTTL); err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return err
	}

	body := fmt.Sprintf(
		"Use this token to reset your planetary API password: %s\n\nIt expires in %s and works once.",
		token, svc.resetTTL,
	)
	if err := svc.notifier.Send(ctx, user.Email, resetEmailSubject, body); err != nil {
		logger.Log.Errorw("failed to send reset email", "err", err)
		return err
	}

	return nil
}

// ResetPassword consumes a reset token and sets a new password for its owner.
// A password bcrypt cannot hash is rejected before the token is spent.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	email, err := svc.tokens.Consume(ctx, token)
	if errors.Is(err, repositories.ErrResetTokenNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		logger.Log.Errorw("failed to read reset token", "err", err)
		return err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if err := svc.writer.UpdatePassword(ctx, user.Email, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	svc.publish(ctx, models.EventUserPasswordReset, user)
	return nil
}

// Profile returns the user registered under email.
func (svc *AuthService) Profile(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hash), nil
}

// publish is best effort: the user change is already committed.
func (svc *AuthService) publish(ctx context.Context, eventType string, user *models.User) {
	if svc.publisher == nil {
		return
	}
	event := models.UserEvent{
		Type:       eventType,
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := svc.publisher.Publish(ctx, event); err != nil {
		logger.Log.Warnw("failed to publish user event", "type", eventType, "err", err)
	}
}
