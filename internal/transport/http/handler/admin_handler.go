package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bankclients/internal/core/auth"
	"bankclients/internal/core/config"
	"bankclients/internal/domain"
	"bankclients/internal/service"
	"bankclients/internal/transport/http/ez"
	mdw "bankclients/internal/transport/http/middleware"
	"bankclients/pkg/utils"
)

type AdminHandler struct {
	svc   *service.UserService
	jwter *auth.JWTer
	admin config.Admin
}

func NewAdminHandler(svc *service.UserService, jwter *auth.JWTer, admin config.Admin) *AdminHandler {
	return &AdminHandler{svc: svc, jwter: jwter, admin: admin}
}

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // 秒
}

type refreshOut struct {
	Total int `json:"total"`
}

// MountPublic POST /auth/login，每 IP 限速
func (h *AdminHandler) MountPublic(public *gin.RouterGroup) {
	g := public.Group("/auth", mdw.RateLimitPerIP(1, 5))
	ez.RegisterAction(ez.New(g), ez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			userOK := utils.ConstantTimeEqual(strings.TrimSpace(in.Username), h.admin.Username)
			passOK := utils.CheckPassword(in.Password, h.admin.PasswordHash)
			if !userOK || !passOK {
				return loginOut{}, ez.Unauthorized("invalid credentials")
			}
			tok, err := h.jwter.Issue(h.admin.Username, auth.RoleAdmin)
			if err != nil {
				return loginOut{}, ez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, ExpiresIn: int64(h.jwter.TTL.Seconds())}, nil
		},
	})
}

// MountAdmin 分组已挂 AuthJWT(admin)，这里再按角色校验一次
func (h *AdminHandler) MountAdmin(admin *gin.RouterGroup) {
	e := ez.New(admin)

	ez.RegisterAction(e, ez.Action[struct{}, refreshOut]{
		Method: http.MethodPost,
		Path:   "/users/refresh",
		Binder: ez.BindNone,
		Auth:   true,
		Roles:  []string{auth.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (refreshOut, error) {
			users, err := h.svc.GetUsers(c.Request.Context(), true)
			if err != nil {
				return refreshOut{}, toActionErr(err)
			}
			return refreshOut{Total: len(users)}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, domain.CacheStats]{
		Method: http.MethodGet,
		Path:   "/cache",
		Binder: ez.BindNone,
		Auth:   true,
		Roles:  []string{auth.RoleAdmin},
		Handler: func(_ *gin.Context, _ *struct{}) (domain.CacheStats, error) {
			return h.svc.Stats(), nil
		},
	})
}
