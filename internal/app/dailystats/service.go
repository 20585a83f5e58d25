package dailystats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Record counts one activity event toward the given day's total.
	Record(ctx context.Context, day time.Time) error

	// CountFor returns the day's total, 0 when the date is unseen.
	CountFor(ctx context.Context, day time.Time) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Sugar(),
	}
}

func (s *service) Record(ctx context.Context, day time.Time) error {
	day = Day(day)
	if err := s.repo.IncrementForDate(ctx, day); err != nil {
		return fmt.Errorf("failed to record daily stat for %s: %w", day.Format("2006-01-02"), err)
	}
	return nil
}

func (s *service) CountFor(ctx context.Context, day time.Time) (int64, error) {
	stat, err := s.repo.GetByDate(ctx, Day(day))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get daily stat: %w", err)
	}
	return stat.MessageCount, nil
}

// Day truncates an instant to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
