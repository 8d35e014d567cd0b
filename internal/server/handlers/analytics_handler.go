package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/metrics"
	"github.com/labstockease/insights/internal/service/analytics"
	"github.com/labstockease/insights/internal/service/reports"
)

// AnalyticsHandler adapts the analytics operations to HTTP.
type AnalyticsHandler struct {
	svc     *analytics.Service
	reports *reports.Service
	logger  *zap.Logger
}

// NewAnalyticsHandler constructs the HTTP handler adapter.
func NewAnalyticsHandler(svc *analytics.Service, reportSvc *reports.Service, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{svc: svc, reports: reportSvc, logger: logger}
}

// Forecast serves next-month demand predictions for a single item code.
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	itemCode := c.Param("item_code")

	forecast, err := h.svc.ForecastDemand(c.Request.Context(), itemCode)
	if err != nil {
		h.fail(c, "forecast", err)
		return
	}

	metrics.IncAnalytics("forecast", "ok")
	c.JSON(http.StatusOK, forecast)
}

// UserSuggestions serves the top requested items for a user.
func (h *AnalyticsHandler) UserSuggestions(c *gin.Context) {
	email := c.Param("email")

	suggestions, err := h.svc.SuggestItems(c.Request.Context(), email)
	if err != nil {
		h.fail(c, "user_suggestions", err)
		return
	}

	metrics.IncAnalytics("user_suggestions", "ok")
	c.JSON(http.StatusOK, suggestions)
}

// ExpiryRisk serves restock batches expiring within the alert horizon.
func (h *AnalyticsHandler) ExpiryRisk(c *gin.Context) {
	flagged, err := h.svc.ExpiryRisk(c.Request.Context())
	if err != nil {
		h.fail(c, "expiry_risk", err)
		return
	}

	metrics.IncAnalytics("expiry_risk", "ok")
	c.JSON(http.StatusOK, gin.H{"risk_items": flagged})
}

// ReorderRecommendations serves items at or below their minimum stock level.
func (h *AnalyticsHandler) ReorderRecommendations(c *gin.Context) {
	recommendations, err := h.svc.ReorderRecommendations(c.Request.Context())
	if err != nil {
		h.fail(c, "reorder_recommendations", err)
		return
	}

	metrics.IncAnalytics("reorder_recommendations", "ok")
	c.JSON(http.StatusOK, gin.H{"reorder_recommendations": recommendations})
}

// RiskItems serves the low-stock and anomaly report.
func (h *AnalyticsHandler) RiskItems(c *gin.Context) {
	report, err := h.svc.RiskItems(c.Request.Context())
	if err != nil {
		h.fail(c, "risk_items", err)
		return
	}

	metrics.IncAnalytics("risk_items", "ok")
	c.JSON(http.StatusOK, report)
}

// StockReport streams the reorder/low-stock workbook as an xlsx download.
func (h *AnalyticsHandler) StockReport(c *gin.Context) {
	workbook, err := h.reports.StockReport(c.Request.Context())
	if err != nil {
		h.fail(c, "stock_report", err)
		return
	}

	metrics.IncAnalytics("stock_report", "ok")
	c.Header("Content-Disposition", `attachment; filename="stock_report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// fail maps service errors to structured HTTP error bodies. Not-found
// conditions are caller errors, everything else is reported as internal with
// the cause logged rather than leaked.
func (h *AnalyticsHandler) fail(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, analytics.ErrItemNotFound),
		errors.Is(err, analytics.ErrUserNotFound),
		errors.Is(err, analytics.ErrNoData):
		metrics.IncAnalytics(operation, "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		metrics.IncAnalytics(operation, "error")
		h.logger.Error("analytics operation failed",
			zap.String("operation", operation), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
