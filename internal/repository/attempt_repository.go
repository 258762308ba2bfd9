package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"space_academy_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// AttemptRepository holds the authoritative answer key of the one in-flight
// quiz attempt per user, between issuing the questions and grading the
// submission. Redis keeps the key out of the page payload and the TTL clears
// abandoned attempts.
type AttemptRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewAttemptRepository(rdb *redis.Client, ttl time.Duration) *AttemptRepository {
	return &AttemptRepository{Redis: rdb, TTL: ttl}
}

func attemptKey(userID uint) string {
	return fmt.Sprintf("quiz:attempt:%d", userID)
}

// PutKey stores the answer key for the user's attempt, replacing any ungraded
// key from an earlier issue.
func (r *AttemptRepository) PutKey(userID uint, answerKey map[string]string) error {
	data, err := json.Marshal(answerKey)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return r.Redis.Set(ctx, attemptKey(userID), data, r.TTL).Err()
}

// GetKey returns util.ErrNoActiveAttempt when no key is held for the user.
func (r *AttemptRepository) GetKey(userID uint) (map[string]string, error) {
	ctx := context.Background()
	data, err := r.Redis.Get(ctx, attemptKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrNoActiveAttempt
	}
	if err != nil {
		return nil, err
	}
	var answerKey map[string]string
	if err := json.Unmarshal(data, &answerKey); err != nil {
		return nil, err
	}
	return answerKey, nil
}

func (r *AttemptRepository) DeleteKey(userID uint) error {
	ctx := context.Background()
	return r.Redis.Del(ctx, attemptKey(userID)).Err()
}
