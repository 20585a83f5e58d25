package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeRepository mirrors the storage contract in memory: insert-or-increment
// then the model transition, all under one lock.
type fakeRepository struct {
	mu       sync.Mutex
	profiles map[int64]*UserProfile
	err      error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: make(map[int64]*UserProfile)}
}

func (f *fakeRepository) GetByID(_ context.Context, userID int64) (*UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) Record(_ context.Context, userID int64, day time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	day = Day(day)
	p, ok := f.profiles[userID]
	if !ok {
		f.profiles[userID] = &UserProfile{ID: userID, MessageCount: 1, LastActivity: day}
		return nil
	}
	p.MessageCount++
	p.Apply(day)
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, nil, zap.NewNop())
}

func TestServiceRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("first event creates a fresh profile", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		require.NoError(t, svc.Record(ctx, 42, date(2025, 3, 10)))

		p, err := svc.GetProfile(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, p)
		require.EqualValues(t, 1, p.MessageCount)
		require.EqualValues(t, 0, p.Streak)
		require.EqualValues(t, 0, p.MutesLeft)
		require.EqualValues(t, 0, p.MutesUsed)
		require.Equal(t, date(2025, 3, 10), p.LastActivity)
	})

	t.Run("same day is idempotent for streak and date", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 10)))
		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 10)))

		p, err := svc.GetProfile(ctx, 7)
		require.NoError(t, err)
		require.EqualValues(t, 2, p.MessageCount)
		require.EqualValues(t, 0, p.Streak)
		require.Equal(t, date(2025, 3, 10), p.LastActivity)
	})

	t.Run("consecutive days build a streak", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 10)))
		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 11)))

		p, err := svc.GetProfile(ctx, 7)
		require.NoError(t, err)
		require.EqualValues(t, 1, p.Streak)

		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 12)))

		p, err = svc.GetProfile(ctx, 7)
		require.NoError(t, err)
		require.EqualValues(t, 2, p.Streak)
	})

	t.Run("a gap breaks the streak", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 10)))
		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 11)))
		require.NoError(t, svc.Record(ctx, 7, date(2025, 3, 14)))

		p, err := svc.GetProfile(ctx, 7)
		require.NoError(t, err)
		require.EqualValues(t, 0, p.Streak)
		require.Equal(t, date(2025, 3, 14), p.LastActivity)
	})

	t.Run("credit cadence over long sequences", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		day := date(2025, 1, 1)
		for i := 0; i < 250; i++ {
			require.NoError(t, svc.Record(ctx, 9, day))
			if i%10 == 9 {
				day = day.AddDate(0, 0, 1)
			}
		}

		p, err := svc.GetProfile(ctx, 9)
		require.NoError(t, err)
		require.EqualValues(t, 250, p.MessageCount)
		require.EqualValues(t, 2, p.MutesLeft)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.err = errors.New("connection refused")
		svc := newTestService(repo)

		err := svc.Record(ctx, 1, date(2025, 3, 10))
		require.Error(t, err)
		require.ErrorContains(t, err, "connection refused")
	})
}

func TestServiceGetProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown user is absent, not an error", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newFakeRepository())

		p, err := svc.GetProfile(ctx, 999)
		require.NoError(t, err)
		require.Nil(t, p)
	})

	t.Run("storage failure is an error, not absent", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.err = errors.New("connection refused")
		svc := newTestService(repo)

		p, err := svc.GetProfile(ctx, 1)
		require.Error(t, err)
		require.Nil(t, p)
	})
}
