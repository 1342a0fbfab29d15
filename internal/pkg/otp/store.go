package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pcell/backend/internal/pkg/apperrors"
)

// Store keeps short-lived one-time codes keyed by email address. Entries
// expire on their own; a successful verification consumes the code so it
// cannot be replayed.
type Store interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Consume(ctx context.Context, email, code string) error
}

const keyPrefix = "pcell:otp:"

// RedisStore is the redis-backed Store implementation
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis with short timeouts
func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &RedisStore{client: client}
}

// Healthy verifies redis connectivity
func (s *RedisStore) Healthy(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}
	return s.client.Ping(ctx).Err() == nil
}

// Put stores a code for an email, replacing any previous code
func (s *RedisStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+email, code, ttl).Err(); err != nil {
		return fmt.Errorf("error storing OTP: %w", err)
	}
	return nil
}

// Consume checks the code for an email and deletes it on success. A missing
// key means the code expired or was never issued.
func (s *RedisStore) Consume(ctx context.Context, email, code string) error {
	key := keyPrefix + email
	stored, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrOTPExpired
		}
		return fmt.Errorf("error reading OTP: %w", err)
	}
	if stored != code {
		return apperrors.ErrOTPInvalid
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("error consuming OTP: %w", err)
	}
	return nil
}

// GenerateCode produces a random 6-digit numeric code
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("error generating OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
