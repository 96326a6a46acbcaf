package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	autherrors "go-attendance/internal/auth/errors"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

//go:generate mockgen -source=auth_store.go -destination=mock/auth_store_mock.go -package=mock
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Touch(ctx context.Context, s *Session) error
}

type redisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

// Save menaruh session dengan TTL sampai batas 8 jam. Redis ikut
// membersihkan session basi walau tidak pernah di-logout.
func (st *redisSessionStore) Save(ctx context.Context, s *Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ttl := time.Until(s.ExpiresAt())
	if ttl <= 0 {
		return autherrors.ErrSessionExpired
	}
	return st.rdb.Set(ctx, sessionKeyPrefix+s.ID, payload, ttl).Err()
}

func (st *redisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := st.rdb.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, autherrors.ErrSessionNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (st *redisSessionStore) Delete(ctx context.Context, id string) error {
	return st.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// Touch menyimpan ulang LastActivityAt. TTL tetap dihitung dari LoginAt:
// jendela session tidak pernah maju.
func (st *redisSessionStore) Touch(ctx context.Context, s *Session) error {
	return st.Save(ctx, s)
}
