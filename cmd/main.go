package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-board/internal/access"
	"mesa-board/internal/adapter/http"
	"mesa-board/internal/adapter/postgres"
	"mesa-board/internal/adapter/usecase"
	"mesa-board/internal/config"
	"mesa-board/internal/db"
	"mesa-board/internal/metrics"
	"mesa-board/internal/ratelimit"
)

// main is the entry point of the mesa-board service. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the rate
// limited store adapters into the monitor and board use cases, then starts
// the HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		opts := cfg.Log.HandlerOptions()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	limiter := ratelimit.New(cfg.Limiter, quartz.NewReal(), m)
	gate := access.NewGate(cfg.Access)
	catalog := postgres.NewCatalogRepository(pool)
	reader := usecase.NewChunkReader(postgres.NewTableStore(pool), limiter, cfg.Reader, m, logger)
	monitor := usecase.NewMonitorUseCase(catalog, postgres.NewMonitorRepository(pool), reader, limiter, gate, cfg.Monitor, m, logger)
	board := usecase.NewBoardUseCase(catalog, reader, limiter, gate)

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.Env != "dev",
		SameSite: http.SameSiteLaxMode,
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Monitor:  monitor,
		Board:    board,
		Sessions: store,
		Session:  cfg.Session,
		Store:    gatedPinger{limiter: limiter, pool: pool},
		Limiter:  limiter,
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:   logger,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// gatedPinger routes health pings through the rate limiter like every other
// store call.
type gatedPinger struct {
	limiter *ratelimit.Limiter
	pool    *pgxpool.Pool
}

func (p gatedPinger) Ping(ctx context.Context) error {
	if err := p.limiter.Acquire(ctx); err != nil {
		return err
	}
	return p.pool.Ping(ctx)
}
