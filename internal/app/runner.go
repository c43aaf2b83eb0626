package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"courier-agent/internal/config"
	"courier-agent/internal/http/pprofserver"
	"courier-agent/internal/jobs"
	"courier-agent/internal/logx"
	"courier-agent/internal/service/locationsync"
	"courier-agent/internal/session"
	"courier-agent/internal/storage/kvstore"
)

// MustRun starts the agent using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

type runDeps struct {
	dig.In

	Ctx      context.Context
	Cfg      *config.Config
	Logger   logx.Logger
	Server   *http.Server
	Session  *session.Store
	Jobs     *jobs.Manager
	Location *locationsync.Service
	KV       *kvstore.Store
}

func run(container *dig.Container) error {
	return container.Invoke(func(d runDeps) error {
		// pick up a persisted session before anything consults it
		d.Session.Restore()

		if err := d.Jobs.StartAll(); err != nil {
			return fmt.Errorf("start jobs: %w", err)
		}

		startPprof(d.Cfg, d.Logger)
		startServer(d.Server, d.Logger)

		waitForShutdown(d.Ctx, d.Logger)

		d.Jobs.StopAll()
		d.Location.ClearActiveDelivery()
		gracefulShutdown(d.Server, d.Logger, 15*time.Second)
		closeResources(d.KV, d.Server, d.Logger)
		return nil
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("courier agent listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func startPprof(cfg *config.Config, logger logx.Logger) {
	if cfg.PprofPort == 0 {
		return
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.PprofPort),
		Handler:           pprofserver.Handler(pprofserver.Config{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("pprof server stopped", logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down courier agent")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(kv *kvstore.Store, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Warn("server close error", logx.Err(err))
	}
	if err := kv.Close(); err != nil {
		logger.Warn("session store close error", logx.Err(err))
	}
}
