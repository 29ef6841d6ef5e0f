package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
	"github.com/comitanigiacomo/kanso-habits/internal/core/stats"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/stats")
	{
		group.GET("/overview", h.GetOverview)
		group.GET("/heatmap", h.GetHeatmap)
		group.GET("/consistency", h.GetConsistency)
	}
}

// rangeToken never rejects input; unknown tokens resolve to 30 days downstream.
func rangeToken(c *gin.Context) string {
	return c.DefaultQuery("range", stats.DefaultRange)
}

// GetOverview godoc
// @Summary  Per-habit streaks and completion rates
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    range query string false "7d, 30d, 90d, 180d or 365d" default(30d)
// @Success  200 {object} domain.StatsOverview
// @Router   /stats/overview [get]
func (h *StatsHandler) GetOverview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	overview, err := h.svc.GetOverview(c.Request.Context(), userID, rangeToken(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetHeatmap godoc
// @Summary  Daily check-in counts
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    range query string false "7d, 30d, 90d, 180d or 365d" default(30d)
// @Success  200 {object} domain.Heatmap
// @Router   /stats/heatmap [get]
func (h *StatsHandler) GetHeatmap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	heatmap, err := h.svc.GetHeatmap(c.Request.Context(), userID, rangeToken(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, heatmap)
}

// GetConsistency godoc
// @Summary  Share of successful periods across habits
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    range query string false "7d, 30d, 90d, 180d or 365d" default(30d)
// @Success  200 {object} domain.ConsistencyScore
// @Router   /stats/consistency [get]
func (h *StatsHandler) GetConsistency(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	score, err := h.svc.GetConsistency(c.Request.Context(), userID, rangeToken(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, score)
}
