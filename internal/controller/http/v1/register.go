package httpv1

import (
	"github.com/egz13/logprobe/internal/metrics"
	"github.com/egz13/logprobe/internal/service"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	c := NewAnalyzerController(services.Analyzer, counters)

	v1 := handler.Group("/api/v1")
	v1.POST("/logs/analyze", c.AnalyzeLogs)
	v1.GET("/logs/search", c.SearchLogs)
	v1.GET("/config", c.LogConfig)
	v1.POST("/defects/fix", c.SuggestFix)
}
