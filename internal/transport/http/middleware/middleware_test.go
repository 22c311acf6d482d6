package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankclients/internal/core/auth"
	"bankclients/internal/transport/http/ez"
	resp "bankclients/internal/transport/http/response"
)

func init() { gin.SetMode(gin.TestMode) }

func decode(t *testing.T, w *httptest.ResponseRecorder) resp.Resp {
	t.Helper()
	var r resp.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(KeyRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(KeyRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(KeyRequestID))
}

func TestRateLimitPerIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitPerIP(0.001, 1))
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, resp.OK(nil)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, resp.CodeOK, decode(t, w).Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, resp.CodeServiceUnavailable, decode(t, w).Code)
}

func TestAuthJWT(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "bankclients", TTL: time.Minute}
	r := gin.New()
	r.Use(AuthJWT(j, "admin"))
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, resp.OK(gin.H{"uid": c.GetString(ez.CtxUserID), "role": c.GetString(ez.CtxRole)}))
	})

	call := func(header string) resp.Resp {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return decode(t, w)
	}

	assert.Equal(t, resp.CodeUnauthorized, call("").Code)
	assert.Equal(t, resp.CodeUnauthorized, call("Bearer garbage").Code)

	userTok, err := j.Issue("u1", "user")
	require.NoError(t, err)
	assert.Equal(t, resp.CodeForbidden, call("Bearer "+userTok).Code)

	adminTok, err := j.Issue("root", "admin")
	require.NoError(t, err)
	ok := call("Bearer " + adminTok)
	assert.Equal(t, resp.CodeOK, ok.Code)
	assert.Equal(t, map[string]any{"uid": "root", "role": "admin"}, ok.Data)
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/", func(c *gin.Context) { <-c.Request.Context().Done() })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, resp.CodeTimeout, decode(t, w).Code)
}
