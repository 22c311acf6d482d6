package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bankclients/internal/core/config"
	"bankclients/internal/core/logger"
	"bankclients/internal/datasource"
	"bankclients/internal/repo"
	"bankclients/internal/service"
	"bankclients/pkg/utils"
)

// 一次性拉取并打印用户列表；--hash-password 生成 admin.password_hash
func main() {
	var (
		cfgPath string
		id      int
		hashPw  string
	)
	pflag.StringVarP(&cfgPath, "config", "c", "", "config file (default $CONFIG_PATH or "+config.DefaultPath+")")
	pflag.IntVar(&id, "id", 0, "print a single user by id")
	pflag.StringVar(&hashPw, "hash-password", "", "print a bcrypt hash for admin.password_hash and exit")
	pflag.Parse()

	if hashPw != "" {
		h, err := utils.HashPassword(hashPw)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hash password:", err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	_ = godotenv.Load()
	cfg := config.MustLoad(cfgPath)
	// stdout 只放结果，日志走 stderr
	log, cleanup := logger.Build(logger.Options{
		Level: "warn",
		JSON:  cfg.Log.JSON,
		Out:   zapcore.Lock(os.Stderr),
	})
	defer cleanup()

	var only *int
	if pflag.CommandLine.Changed("id") {
		only = &id
	}
	if err := run(cfg, log, os.Stdout, only); err != nil {
		cleanup()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run only 非 nil 时只打印该用户
func run(cfg *config.Config, log *zap.Logger, out io.Writer, only *int) error {
	src, closeSrc, err := datasource.New(cfg, log)
	if err != nil {
		return fmt.Errorf("user source init: %w", err)
	}
	defer closeSrc()

	fetchTimeout := time.Duration(cfg.Source.TimeoutSec) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout+5*time.Second)
	defer cancel()

	svc := service.NewUserService(repo.NewUserRepo(src, repo.WithFetchTimeout(fetchTimeout)), log)
	items, err := svc.ListItems(ctx, true)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if only != nil {
		u, err := svc.GetUser(ctx, *only)
		if err != nil {
			return err
		}
		return enc.Encode(u)
	}
	return enc.Encode(items)
}
