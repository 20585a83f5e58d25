package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tracker/internal/providers/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Record applies one activity event. Storage failures come back wrapped
	// and retryable; the caller owns retry policy.
	Record(ctx context.Context, userID int64, day time.Time) error

	// GetProfile returns (nil, nil) for users that never produced an event.
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
}

type service struct {
	repo   Repository
	redisP *redis.RedisProvider
	logger *zap.SugaredLogger
}

func NewService(repo Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redisP: redisP,
		logger: logger.Sugar(),
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

func (s *service) Record(ctx context.Context, userID int64, day time.Time) error {
	if err := s.repo.Record(ctx, userID, day); err != nil {
		return fmt.Errorf("failed to record activity for user %d: %w", userID, err)
	}

	if s.redisP != nil {
		if err := s.redisP.Del(ctx, cacheKey(userID)).Err(); err != nil {
			s.logger.Warnw("Failed to invalidate profile cache", "user_id", userID, "error", err)
		}
	}

	return nil
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	key := cacheKey(userID)

	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, key).Result()
		if err == nil && cached != "" {
			var p UserProfile
			if json.Unmarshal([]byte(cached), &p) == nil {
				return &p, nil
			}
		}
	}

	p, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for user %d: %w", userID, err)
	}

	if s.redisP != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, key, data, 0)
		}
	}

	return p, nil
}
