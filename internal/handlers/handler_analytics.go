package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/dto"
	"github.com/moneymap/moneymap_backend/internal/middleware"
	"github.com/moneymap/moneymap_backend/internal/utils/timewindow"
)

// analyticsHandler handles HTTP requests for the aggregation engine.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// registerAnalyticsRoutes registers the read-only analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := &analyticsHandler{analyticsService: analyticsService}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("", h.getAnalytics)
		analytics.GET("/date-view", h.getDateView)
	}
}

// getAnalytics godoc
// @Summary Get analytics for a period
// @Description Returns totals, per-day income/expense trends, and the expense category breakdown over the resolved window
// @Tags analytics
// @Produce  json
// @Param   period query string false "Window granularity (daily|weekly|monthly|yearly, default monthly)"
// @Param   startDate query string false "Explicit window start (YYYY-MM-DD or RFC3339)"
// @Param   endDate query string false "Explicit window end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid date values"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Security BearerAuth
// @Router /analytics [get]
func (h *analyticsHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AnalyticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var start, end *time.Time
	if params.StartDate != "" {
		t, err := parseDateParam(params.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate: " + err.Error()})
			return
		}
		start = &t
	}
	if params.EndDate != "" {
		t, err := parseDateParam(params.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate: " + err.Error()})
			return
		}
		end = &t
	}

	if params.Period == "" {
		params.Period = string(timewindow.Monthly)
	}
	period := timewindow.Period(params.Period)
	report, err := h.analyticsService.GetAnalytics(c.Request.Context(), userID, period, start, end)
	if err != nil {
		logger.Error("Failed to compute analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(report, string(period)))
}

// getDateView godoc
// @Summary Get a calendar snapshot
// @Description Returns totals and transactions for the calendar window (today|week|month|year) around the selected date
// @Tags analytics
// @Produce  json
// @Param   view query string true "Snapshot window (today|week|month|year)"
// @Param   date query string true "Anchor date (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.DateViewResponse
// @Failure 400 {object} map[string]string "Invalid view or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute date view"
// @Security BearerAuth
// @Router /analytics/date-view [get]
func (h *analyticsHandler) getDateView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DateViewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	selected, err := parseDateParam(params.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + err.Error()})
		return
	}

	view := timewindow.View(params.View)
	dateView, err := h.analyticsService.GetDateView(c.Request.Context(), userID, view, selected)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute date view", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute date view"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDateViewResponse(dateView, string(view)))
}
