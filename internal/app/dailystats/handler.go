package dailystats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	GetStat(c *gin.Context)
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

func (h *handler) GetStat(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().UTC().Format("2006-01-02")
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		h.logger.Warnw("GetStat: invalid date", "date", dateStr)
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	count, err := h.service.CountFor(c.Request.Context(), day)
	if err != nil {
		h.logger.Errorw("GetStat: storage failure", "date", dateStr, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, StatResponse{
		Date:         day.Format("2006-01-02"),
		MessageCount: count,
	})
}
