package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter 空引擎 + CORS，中间件由各引擎自行组装
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(cors.Default())
	return r
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }

// HumanURL 0.0.0.0 / 空 host 换成 127.0.0.1，方便日志里直接点开
func HumanURL(host string, port int) string {
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}

// Start 异步监听；启动失败直接 Fatal
func Start(srv *http.Server, l *zap.Logger, name string) {
	go func() {
		l.Info(name+" starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal(name+" start FAILED", zap.Error(err))
		}
	}()
}

// Shutdown 多个 server 共用一个超时
func Shutdown(ctx context.Context, l *zap.Logger, servers ...*http.Server) {
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			l.Warn("server shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}
}
