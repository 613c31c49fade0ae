package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// Session is the server-side state behind a session cookie
type Session struct {
	ID        string                      `json:"id"`
	Principal *models.Principal           `json:"principal,omitempty"`
	Pending   *models.PendingVerification `json:"pending,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
}

// Store persists sessions
type Store interface {
	Create(ctx context.Context, s *Session) error
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

// RedisStore keeps sessions as JSON under a fixed lifetime
type RedisStore struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisStore creates a Redis backed session store
func NewRedisStore(redisClient *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{redisClient: redisClient, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf(constants.KeySession, id)
}

// Create writes a new session with the full lifetime
func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	return s.write(ctx, sess, s.ttl)
}

// Save rewrites an existing session without extending its lifetime
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	ttl, err := s.redisClient.TTL(ctx, sessionKey(sess.ID))
	if err != nil {
		return fmt.Errorf("failed to read session ttl: %w", err)
	}
	if ttl <= 0 {
		return ErrSessionNotFound
	}
	return s.write(ctx, sess, ttl)
}

func (s *RedisStore) write(ctx context.Context, sess *Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(sess.ID), payload, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get loads a session by id
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Destroy removes a session
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	if err := s.redisClient.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
