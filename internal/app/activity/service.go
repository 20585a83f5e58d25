package activity

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/app/dailystats"
	"tracker/internal/app/profile"
	"tracker/internal/utils"

	"go.uber.org/zap"
)

// Service is the ingestion glue: one call per inbound chat message, fanning
// out to the per-user profile tracker and the global daily counter. The two
// touch disjoint keys, so their order does not matter.
type Service interface {
	RecordActivity(ctx context.Context, userID int64, occurredAt time.Time) error
}

type service struct {
	profileSvc profile.Service
	statsSvc   dailystats.Service
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewService(profileSvc profile.Service, statsSvc dailystats.Service, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		profileSvc: profileSvc,
		statsSvc:   statsSvc,
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (s *service) RecordActivity(ctx context.Context, userID int64, occurredAt time.Time) error {
	if userID == 0 {
		return fmt.Errorf("invalid user id")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	day := profile.Day(occurredAt)

	if err := s.statsSvc.Record(ctx, day); err != nil {
		return fmt.Errorf("failed to record daily aggregate: %w", err)
	}

	if err := s.profileSvc.Record(ctx, userID, day); err != nil {
		return fmt.Errorf("failed to record user activity: %w", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(EventActivityRecorded, map[string]interface{}{
			"user_id":   userID,
			"date":      day.Format("2006-01-02"),
			"timestamp": occurredAt.UTC().Unix(),
		})
	}

	return nil
}
