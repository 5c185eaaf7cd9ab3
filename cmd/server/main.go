package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/jimorie/forbidden-lands-dice/internal/chat"
	"github.com/jimorie/forbidden-lands-dice/internal/config"
	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/grpcapi"
	"github.com/jimorie/forbidden-lands-dice/internal/httpapi"
	"github.com/jimorie/forbidden-lands-dice/internal/report"
	"github.com/jimorie/forbidden-lands-dice/internal/session"
	"github.com/jimorie/forbidden-lands-dice/internal/table"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	live, err := table.NewLive(table.NewLoader(cfg.ConfigDir), cfg.Table)
	if err != nil {
		return fmt.Errorf("load table %q: %w", cfg.Table, err)
	}
	settings := live.Settings()
	slog.InfoContext(ctx, "table loaded", "table", cfg.Table, "version", settings.Version, "presets", len(settings.Presets()))

	rng := dice.DefaultRNG()
	if cfg.Seed != 0 {
		rng = dice.NewSeededRNG(cfg.Seed)
	}
	rng = dice.Locked(rng)

	hub := chat.NewHub(cfg.ChatHistory)
	hub.SetGMs(settings.GMs)
	reporter := report.NewReporter(hub, settings.Report())

	g, ctx := errgroup.WithContext(ctx)

	var store session.Store
	if cfg.RedisURL != "" {
		pool := session.NewRedisPool(cfg.RedisURL)
		defer pool.Close()
		rs := session.NewRedisStore(pool, cfg.SessionTTL)
		if err := rs.Ping(ctx); err != nil {
			return err
		}
		store = rs
	} else {
		ms := session.NewMemoryStore(cfg.SessionTTL)
		if cfg.SessionTTL > 0 {
			g.Go(func() error { return sweep(ctx, ms, cfg.SessionTTL) })
		}
		store = ms
	}
	svc := session.NewService(store, reporter, rng)

	// table reload
	watcher := table.NewFileWatcher(live.Files(), cfg.WatchInterval, func(path string) {
		if err := live.Reload(); err != nil {
			slog.ErrorContext(ctx, "table reload failed, keeping previous settings", "path", path, "err", err)
			return
		}
		s := live.Settings()
		hub.SetGMs(s.GMs)
		reporter.Configure(s.Report())
		slog.InfoContext(ctx, "table reloaded", "path", path, "version", s.Version)
	})
	g.Go(func() error { return watcher.Run(ctx) })

	// HTTP
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.New(svc, live, hub, rng).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		slog.InfoContext(ctx, "http listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	// gRPC
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", cfg.GRPCAddr, err)
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(grpcapi.LogUnary))
	hs := grpcapi.Register(gs, grpcapi.NewServer(svc, live))
	g.Go(func() error {
		slog.InfoContext(ctx, "grpc listening", "addr", cfg.GRPCAddr)
		if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		hs.Shutdown()
		gs.GracefulStop()
		return nil
	})

	return g.Wait()
}

// sweep drops expired rolls from the memory store.
func sweep(ctx context.Context, ms *session.MemoryStore, every time.Duration) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := ms.Sweep(); n > 0 {
				slog.DebugContext(ctx, "expired rolls removed", "count", n)
			}
		}
	}
}
