// Package main is the entry point for the Tripboard API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sethvargo/go-retry"

	"github.com/pkeller/tripboard/backend/internal/config"
	"github.com/pkeller/tripboard/backend/internal/handler"
	"github.com/pkeller/tripboard/backend/internal/metrics"
	"github.com/pkeller/tripboard/backend/internal/middleware"
	"github.com/pkeller/tripboard/backend/internal/repo"
	"github.com/pkeller/tripboard/backend/internal/service"
	"github.com/pkeller/tripboard/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic. Containerized
	// deployments often start the API before Postgres finishes booting, so
	// retry the ping with fibonacci backoff for up to 30 seconds.
	backoff := retry.WithMaxDuration(30*time.Second, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			slog.Warn("database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// goose needs database/sql; open a short-lived connection through the
	// pgx stdlib driver just for the migration run.
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	// --- Repositories and services ----------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	dayRepo := repo.NewDayRepo(pool)
	lodgingRepo := repo.NewLodgingRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)
	foodRepo := repo.NewFoodRepo(pool)
	decisionRepo := repo.NewDecisionRepo(pool)
	membershipRepo := repo.NewMembershipRepo(pool)
	profileRepo := repo.NewProfileRepo(pool)

	accessSvc := service.NewAccessService(tripRepo, membershipRepo)
	tripSvc := service.NewTripService(tripRepo, dayRepo, lodgingRepo, foodRepo, accessSvc)
	daySvc := service.NewDayService(tripRepo, dayRepo, accessSvc)
	lodgingSvc := service.NewLodgingService(lodgingRepo, accessSvc)
	activitySvc := service.NewActivityService(activityRepo, accessSvc)
	foodSvc := service.NewFoodService(foodRepo, accessSvc)
	decisionSvc := service.NewDecisionService(decisionRepo, accessSvc)
	memberSvc := service.NewMemberService(membershipRepo, profileRepo, accessSvc)
	profileSvc := service.NewProfileService(profileRepo)

	srv := handler.NewServer(
		tripSvc, daySvc, lodgingSvc, activitySvc,
		foodSvc, decisionSvc, memberSvc, profileSvc,
		logger,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body cap → metrics. Auth and rate limiting apply only to the
	// /api group inside Routes.
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
	defer rateLimiter.Stop()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySize(cfg.MaxBodyBytes))
	r.Use(collector.Middleware())

	r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))
	r.Mount("/", srv.Routes(
		middleware.NewAuthenticator([]byte(cfg.JWTSecret), profileSvc, logger),
		rateLimiter.Middleware(),
	))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return err
	}
	return nil
}
