package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Only the developer reset is throttled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules")
	{
		schedules.POST("", h.Submit)
		schedules.GET("/current", h.Current)
		schedules.GET("/current/chart", h.Chart)
		schedules.POST("/reset", mw.ResetRateLimit(), h.Reset)
	}
}
