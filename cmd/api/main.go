package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bankclients/internal/core/auth"
	"bankclients/internal/core/config"
	"bankclients/internal/core/logger"
	"bankclients/internal/core/server"
	"bankclients/internal/datasource"
	"bankclients/internal/repo"
	"bankclients/internal/service"
	"bankclients/internal/transport/http/handler"
	"bankclients/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret is empty, set APP_JWT_SECRET")
	}
	if cfg.Admin.PasswordHash == "" {
		log.Warn("admin.password_hash is empty, admin login disabled")
	}

	// 数据源 + 内存缓存，用户端与后台共用一份
	src, closeSrc, err := datasource.New(cfg, log)
	if err != nil {
		log.Fatal("user source init", zap.Error(err))
	}
	defer closeSrc()

	userRepo := repo.NewUserRepo(src, repo.WithFetchTimeout(sourceTimeout(cfg)))
	userSvc := service.NewUserService(userRepo, log)
	if cfg.Source.Warmup {
		ctx, cancel := context.WithTimeout(context.Background(), sourceTimeout(cfg))
		userSvc.Warmup(ctx)
		cancel()
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	reg := router.NewRegistry()
	reg.Register(
		handler.NewUserHandler(userSvc),
		handler.NewAdminHandler(userSvc, jwter, cfg.Admin),
	)

	// 请求超时要比拉取远端长，否则 504 会盖掉真实的网络错误
	reqTimeout := sourceTimeout(cfg) + 5*time.Second
	apiSrv := buildServer(cfg.App.HTTP, router.NewAPIEngine(log, reg, reqTimeout))
	adminSrv := buildServer(cfg.App.Admin, router.NewAdminEngine(log, reg, jwter, reqTimeout))

	apiURL := server.HumanURL(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	adminURL := server.HumanURL(cfg.App.Admin.Host, cfg.App.Admin.Port)
	log.Info("bankclients starting",
		zap.String("env", cfg.App.Env),
		zap.String("health", apiURL+"/health"),
		zap.String("api_v1", apiURL+"/api/v1"),
		zap.String("admin_v1", adminURL+"/admin/v1"),
	)
	server.Start(apiSrv, log, "user api")
	server.Start(adminSrv, log, "admin api")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.Shutdown(ctx, log, apiSrv, adminSrv)
	log.Info("bankclients stopped gracefully")
}

func sourceTimeout(cfg *config.Config) time.Duration {
	if cfg.Source.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.Source.TimeoutSec) * time.Second
}

func buildServer(h config.HTTP, engine http.Handler) *http.Server {
	return server.BuildServer(
		server.Addr(h.Host, h.Port), engine,
		time.Duration(h.ReadTimeoutSec)*time.Second,
		time.Duration(h.WriteTimeoutSec)*time.Second,
		time.Duration(h.IdleTimeoutSec)*time.Second,
	)
}
