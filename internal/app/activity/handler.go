package activity

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	RecordActivity(c *gin.Context)
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

func (h *handler) RecordActivity(c *gin.Context) {
	var req RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("RecordActivity: invalid request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	if err := h.service.RecordActivity(c.Request.Context(), req.UserID, occurredAt); err != nil {
		h.logger.Errorw("RecordActivity: failed to record", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to record activity"})
		return
	}

	c.JSON(http.StatusAccepted, RecordActivityResponse{
		UserID: req.UserID,
		Date:   occurredAt.UTC().Format("2006-01-02"),
	})
}
