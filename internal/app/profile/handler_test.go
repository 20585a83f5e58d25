package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeService struct {
	profile *UserProfile
	err     error
}

func (f *fakeService) Record(context.Context, int64, time.Time) error {
	return f.err
}

func (f *fakeService) GetProfile(context.Context, int64) (*UserProfile, error) {
	return f.profile, f.err
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), NewHandler(svc, zap.NewNop()))
	return engine
}

func TestGetProfileHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns the profile as JSON", func(t *testing.T) {
		t.Parallel()
		svc := &fakeService{profile: &UserProfile{
			ID:           42,
			MessageCount: 150,
			MutesLeft:    1,
			MutesUsed:    0,
			Streak:       3,
			LastActivity: date(2025, 3, 10),
		}}
		engine := newTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile?user_id=42", nil)
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.EqualValues(t, 42, resp.ID)
		require.EqualValues(t, 150, resp.MessageCount)
		require.EqualValues(t, 1, resp.MutesLeft)
		require.EqualValues(t, 3, resp.Streak)
		require.Equal(t, "2025-03-10", resp.LastActivity)
	})

	t.Run("missing user_id is a bad request", func(t *testing.T) {
		t.Parallel()
		engine := newTestRouter(&fakeService{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non numeric user_id is a bad request", func(t *testing.T) {
		t.Parallel()
		engine := newTestRouter(&fakeService{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile?user_id=abc", nil)
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		t.Parallel()
		engine := newTestRouter(&fakeService{profile: nil})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile?user_id=5", nil)
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("storage failure maps to service unavailable", func(t *testing.T) {
		t.Parallel()
		engine := newTestRouter(&fakeService{err: errors.New("connection refused")})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile?user_id=5", nil)
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
