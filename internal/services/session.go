package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no active session exists for a user.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record of an authenticated user.
type Session struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}

// ISessionStore persists session records keyed by user id.
type ISessionStore interface {
	Put(ctx context.Context, sess Session, ttl time.Duration) error
	Get(ctx context.Context, userID string) (Session, error)
	Delete(ctx context.Context, userID string) error
}

// redisSessionStore keeps sessions in redis under session:<userID>, expiring
// with the token TTL.
type redisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) ISessionStore {
	return &redisSessionStore{rdb: rdb}
}

func sessionKey(userID string) string {
	return "session:" + userID
}

func (s *redisSessionStore) Put(ctx context.Context, sess Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.UserID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, userID string) (Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
