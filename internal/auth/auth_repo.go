package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

// ErrAlreadyRevoked is returned by Revoke when another request revoked the
// same token id first.
var ErrAlreadyRevoked = errors.New("refresh token already revoked")

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

// Repository tracks revoked refresh-token ids. Entries expire with the token
// and each id can be revoked once.
type Repository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb: rdb}
}

func revokedKey(jti string) string {
	return revokedKeyPrefix + jti
}

func (r *repository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// sudah kedaluwarsa, tidak perlu disimpan
		return nil
	}
	ok, err := r.rdb.SetNX(ctx, revokedKey(jti), "1", ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyRevoked
	}
	return nil
}

func (r *repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.rdb.Get(ctx, revokedKey(jti)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	}
	return false, err
}
