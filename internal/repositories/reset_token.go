package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/planetary-api/internal/logger"
)

// ErrResetTokenNotFound is returned for unknown, expired or already used tokens.
var ErrResetTokenNotFound = errors.New("reset token not found")

const resetTokenPrefix = "password_reset:"

// ResetTokenRepository keeps password reset tokens in Redis.
type ResetTokenRepository struct {
	rdb *redis.Client
}

func NewResetTokenRepository(rdb *redis.Client) *ResetTokenRepository {
	return &ResetTokenRepository{rdb: rdb}
}

// Save stores token -> email, expiring after ttl.
func (r *ResetTokenRepository) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	err := r.rdb.Set(ctx, resetTokenPrefix+token, email, ttl).Err()

	logger.Log.Infow("redis set",
		"key", resetTokenPrefix+"***",
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Consume returns the email bound to token and deletes it, so a token is usable once.
func (r *ResetTokenRepository) Consume(ctx context.Context, token string) (string, error) {
	email, err := r.rdb.GetDel(ctx, resetTokenPrefix+token).Result()

	logger.Log.Infow("redis getdel",
		"key", resetTokenPrefix+"***",
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrResetTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
