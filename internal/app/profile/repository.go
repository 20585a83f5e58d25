package profile

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// GetByID fetches one profile by primary key. Absent users surface as
	// gorm.ErrRecordNotFound; the service layer maps that to "no profile".
	GetByID(ctx context.Context, userID int64) (*UserProfile, error)

	// Record applies one activity event for userID on the given day.
	// Conflict resolution: ON CONFLICT (id) DO UPDATE increments
	// message_count; the streak and mute updates run in the same
	// transaction so the whole event applies or nothing does.
	Record(ctx context.Context, userID int64, day time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, userID int64) (*UserProfile, error) {
	var p UserProfile
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Record(ctx context.Context, userID int64, day time.Time) error {
	day = Day(day)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The upsert acquires the row lock, so racing events for the same
		// user serialize here until commit.
		err := tx.Exec(`
            INSERT INTO users (id, message_count, mutes_left, mutes_used, streak, last_activity)
            VALUES (?, 1, 0, 0, 0, ?)
            ON CONFLICT (id) DO UPDATE SET
                message_count = users.message_count + 1
        `, userID, day).Error
		if err != nil {
			return err
		}

		var p UserProfile
		if err := tx.Where("id = ?", userID).First(&p).Error; err != nil {
			return err
		}

		if !p.Apply(day) {
			return nil
		}

		return tx.Model(&UserProfile{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"streak":        p.Streak,
				"mutes_left":    p.MutesLeft,
				"last_activity": p.LastActivity,
			}).Error
	})
}
