package dailystats

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// IncrementForDate bumps the counter for one calendar date.
	// Conflict resolution: ON CONFLICT (date) DO UPDATE adds one to the
	// stored count. Single statement, so concurrent events for the same
	// date never lose an update.
	IncrementForDate(ctx context.Context, day time.Time) error

	// GetByDate fetches the row for one date; absent dates surface as
	// gorm.ErrRecordNotFound.
	GetByDate(ctx context.Context, day time.Time) (*DailyStat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) IncrementForDate(ctx context.Context, day time.Time) error {
	row := &DailyStat{
		Date:         day,
		MessageCount: 1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"message_count": gorm.Expr("stats.message_count + 1"),
		}),
	}).Create(row).Error
}

func (r *repository) GetByDate(ctx context.Context, day time.Time) (*DailyStat, error) {
	var stat DailyStat
	err := r.db.WithContext(ctx).Where("date = ?", day).First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}
