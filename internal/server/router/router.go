package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/metrics"
	"github.com/labstockease/insights/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.AnalyticsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/forecast/:item_code", handler.Forecast)
	r.GET("/user-suggestions/:email", handler.UserSuggestions)
	r.GET("/expiry-risk", handler.ExpiryRisk)
	r.GET("/reorder-recommendations", handler.ReorderRecommendations)
	r.GET("/risk-items", handler.RiskItems)
	r.GET("/reports/stock.xlsx", handler.StockReport)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
