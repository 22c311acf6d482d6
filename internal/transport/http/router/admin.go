package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bankclients/internal/core/auth"
	"bankclients/internal/core/server"
	mdw "bankclients/internal/transport/http/middleware"
	resp "bankclients/internal/transport/http/response"
)

// NewAdminEngine 管理端：/admin/v1，除登录外统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, reg *Registry, jwter *auth.JWTer, timeout time.Duration) *gin.Engine {
	r := server.NewRouter()
	r.Use(
		mdw.RequestID(),
		mdw.Recovery(l),
		mdw.RateLimit(50, 100),
		mdw.ConcurrencyLimit(50),
		mdw.MaxBodyBytes(64<<10),
		mdw.Timeout(timeout),
		mdw.Metrics("admin"),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, resp.OK(gin.H{"ok": 1})) })

	public := r.Group("/admin/v1")
	admin := public.Group("")
	admin.Use(mdw.AuthJWT(jwter, auth.RoleAdmin))

	reg.MountAllAdmin(public, admin)
	return r
}
