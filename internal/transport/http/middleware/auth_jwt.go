package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bankclients/internal/core/auth"
	"bankclients/internal/transport/http/ez"
	resp "bankclients/internal/transport/http/response"
)

const KeyClaims = "claims"

// AuthJWT Bearer token 校验；requireRole 为空时只校验登录
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(ez.CtxUserID, claims.UID)
		c.Set(ez.CtxRole, claims.Role)
		c.Next()
	}
}
