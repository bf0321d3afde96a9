package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps sessions as JSON with a TTL, so abandoned flows expire.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

type redisSession struct {
	Flow      Flow      `json:"flow"`
	Step      Step      `json:"step"`
	Scratch   Scratch   `json:"scratch"`
	UpdatedAt time.Time `json:"updated_at"`
}

func sessionKey(conversationID string) string {
	return "session:" + conversationID
}

func (r *RedisSessionStore) Get(ctx context.Context, conversationID string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var rs redisSession
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &Session{
		ConversationID: conversationID,
		Flow:           rs.Flow,
		Step:           rs.Step,
		Scratch:        rs.Scratch,
		UpdatedAt:      rs.UpdatedAt,
	}, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(redisSession{
		Flow:      s.Flow,
		Step:      s.Step,
		Scratch:   s.Scratch,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(s.ConversationID), raw, r.ttl).Err()
}

func (r *RedisSessionStore) Delete(ctx context.Context, conversationID string) error {
	return r.rdb.Del(ctx, sessionKey(conversationID)).Err()
}
