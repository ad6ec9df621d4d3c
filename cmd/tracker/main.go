package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PSrandula/issue-tracker-app/internal/auth"
	"github.com/PSrandula/issue-tracker-app/internal/config"
	"github.com/PSrandula/issue-tracker-app/internal/db"
	httpx "github.com/PSrandula/issue-tracker-app/internal/http"
	"github.com/PSrandula/issue-tracker-app/internal/issue"
)

func main() {
	cfg, _ := config.Load()

	var users auth.UserRepository
	var issues issue.Repository

	switch cfg.StoreDriver {
	case config.StoreMemory:
		users = auth.NewMemoryUserRepository()
		mem := issue.NewMemoryRepository()
		if err := issue.SeedDemo(context.Background(), mem); err != nil {
			slog.Error("seed demo data", "err", err)
			os.Exit(1)
		}
		issues = mem
	default:
		// A store-connect failure at startup is fatal; there is no retry.
		gdb, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			slog.Error("connect database", "err", err)
			os.Exit(1)
		}
		if err := db.AutoMigrateAndIndexes(gdb); err != nil {
			slog.Error("migrate database", "err", err)
			os.Exit(1)
		}
		users = auth.NewGormUserRepository(gdb)
		issues = issue.NewGormRepository(gdb)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	authSvc := auth.NewService(users, jwtSvc)
	issueSvc := issue.NewService(issues)

	r := httpx.NewRouter(cfg, authSvc, issueSvc, jwtSvc)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("serve", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
