package profile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	GetProfile(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{
		service: service,
		logger:  logger.Sugar(),
	}
}

func (h *handler) GetProfile(c *gin.Context) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		h.logger.Warnw("GetProfile: user_id missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warnw("GetProfile: invalid user_id", "user_id", userIDStr)
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be an integer"})
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("GetProfile: storage failure", "user_id", userID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:           p.ID,
		MessageCount: p.MessageCount,
		MutesLeft:    p.MutesLeft,
		MutesUsed:    p.MutesUsed,
		Streak:       p.Streak,
		LastActivity: p.LastActivity.Format("2006-01-02"),
	})
}
