package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zain-site-backend/models"
	"zain-site-backend/services"
)

type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// TrackEvent accepts one analytics event. Always 202: the sink is
// fire-and-forget and the widget never retries.
func (ac *AnalyticsController) TrackEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	ac.analyticsService.Track(c.Request.Context(), req)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// TrackEventBatch accepts a page's worth of buffered events.
func (ac *AnalyticsController) TrackEventBatch(c *gin.Context) {
	var reqs []models.EventRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	ac.analyticsService.TrackBatch(c.Request.Context(), reqs)
	c.JSON(http.StatusAccepted, gin.H{
		"status":   "accepted",
		"received": len(reqs),
	})
}

// GetAnalytics returns event counts grouped by type, category and day
// (admin).
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	var from, to time.Time
	if s := c.Query("start_date"); s != "" {
		from, _ = time.Parse("2006-01-02", s)
	}
	if s := c.Query("end_date"); s != "" {
		to, _ = time.Parse("2006-01-02", s)
	}

	counts, err := ac.analyticsService.Aggregate(c.Request.Context(), from, to, c.Query("event_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve analytics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analytics": counts,
	})
}

// GetStats returns per-collection document counts (admin).
func (ac *AnalyticsController) GetStats(c *gin.Context) {
	stats, err := ac.analyticsService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportData returns the full data export envelope (admin).
func (ac *AnalyticsController) ExportData(c *gin.Context) {
	export, err := ac.analyticsService.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export data",
		})
		return
	}

	c.JSON(http.StatusOK, export)
}
