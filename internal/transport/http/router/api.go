package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bankclients/internal/core/server"
	mdw "bankclients/internal/transport/http/middleware"
	resp "bankclients/internal/transport/http/response"
)

// NewAPIEngine 用户端：/health /metrics /api/v1
func NewAPIEngine(l *zap.Logger, reg *Registry, timeout time.Duration) *gin.Engine {
	r := server.NewRouter()
	r.Use(
		mdw.RequestID(),
		mdw.Recovery(l),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(timeout),
		mdw.Metrics("api"),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, resp.OK(gin.H{"ok": 1})) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	reg.MountAllAPI(r.Group("/api/v1"))
	return r
}
