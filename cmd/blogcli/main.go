// blogcli — CLI блога: каждая подкоманда выполняет ровно одну синхронную
// операцию над локальным хранилищем и завершается (аналог обработчика
// UI-события исходной системы: никаких фоновых писателей).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-local-blog/internal/config"
	"github.com/pribylovaa/go-local-blog/internal/pkg/log"
	"github.com/pribylovaa/go-local-blog/internal/service"
	"github.com/pribylovaa/go-local-blog/internal/storage/badgerdb"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "blogcli",
	Short:         "blogcli manages the local blog: accounts, articles, comments",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// app — всё, что нужно одной команде: конфиг, хранилище, сервис и контекст
// с логгером. Открывается в начале команды, закрывается по её завершении.
type app struct {
	ctx context.Context
	cfg *config.Config
	st  *badgerdb.Storage
	svc *service.Service
}

func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)

	st, err := badgerdb.New(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	ctx := log.Into(context.Background(), lg)

	svc, err := service.New(ctx, st, *cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init service: %w", err)
	}

	return &app{ctx: ctx, cfg: cfg, st: st, svc: svc}, nil
}

func (a *app) close() {
	a.st.Close()
}

func setupLogger(env string) *slog.Logger {
	var lg *slog.Logger

	switch env {
	case envLocal:
		lg = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		lg = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		lg = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		lg = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return lg
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, importCmd, articlesCmd, commentsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
