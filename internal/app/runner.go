package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"campus-delivery/internal/config"
	"campus-delivery/internal/http/pprofserver"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/service/assignment"
)

// Runner runs the HTTP service.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP service using the provided DI container.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, context.Canceled):
		logInfo(container, "shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logInfo(container, "startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

func logInfo(container *dig.Container, msg string) {
	_ = container.Invoke(func(logger logx.Logger) {
		logger.Info(msg)
	})
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(
	ctx context.Context,
	cfg *config.Config,
	server *http.Server,
	pool *pgxpool.Pool,
	logger logx.Logger,
	svc *assignment.Service,
	interval sweepInterval,
) error {
	startServer(server, logger)
	startPprof(ctx, cfg, logger)
	startSweepLoop(ctx, logger, svc, time.Duration(interval))
	waitForShutdown(ctx, logger)
	gracefulShutdown(server, logger, 15*time.Second)
	closeResources(pool, server, logger)
	return ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("delivery-service listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

// startPprof serves the debug endpoints on their own port when enabled.
func startPprof(ctx context.Context, cfg *config.Config, logger logx.Logger) {
	if !cfg.Pprof.Enabled {
		return
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Pprof.Port),
		Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("pprof listen error", logx.Err(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()
}

// startSweepLoop periodically expires offers whose window has passed.
func startSweepLoop(ctx context.Context, logger logx.Logger, svc *assignment.Service, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := svc.ExpireStale(ctx); err != nil {
					logger.Error("offer sweep failed", logx.Err(err))
				}
			}
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down delivery-service")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
