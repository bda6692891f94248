package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
	scheduleHTTP "daily-planner/internal/schedule/delivery/http"
)

// setupScheduleDomain registers the schedule routes. The use case is built by
// the caller so the CLI and the API share one construction path.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC, srv.maxAudioBytes)

	// Routes: registers /api/v1/schedules
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
