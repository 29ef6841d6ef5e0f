// @title        Kanso Habits API
// @version      1.0
// @description  Habit tracking with streaks, heatmaps and consistency scores.
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habits/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habits/internal/config"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

func main() {
	startTime := time.Now()
	cfg := config.Load()

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repository.ApplySchema(schemaCtx, db); err != nil {
		log.Fatalf("Critical: %v", err)
	}
	cancelSchema()

	log.Println("Database connected successfully.")

	// Redis is optional: without it habits are read straight from Postgres
	// and rate limiting is off.
	var rdb *redis.Client
	if client, err := cache.NewRedisClient(cfg); err != nil {
		log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
	} else {
		rdb = client
		defer rdb.Close()
	}

	userRepo := repository.NewPostgresUserRepository(db)
	checkInRepo := repository.NewPostgresCheckInRepository(db)

	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	if rdb != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb, cfg.HabitCacheTTL)
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, userRepo)
	authService := services.NewAuthService(userRepo)
	habitService := services.NewHabitService(habitRepo, userRepo)
	checkInService := services.NewCheckInService(checkInRepo, habitRepo, userRepo)
	statsService := services.NewStatsService(userRepo, habitRepo, checkInRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService, tokenService),
		HabitHandler:    adapterHTTP.NewHabitHandler(habitService),
		CheckInHandler:  adapterHTTP.NewCheckInHandler(checkInService),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService),
		TokenValidator:  tokenService,
		DB:              db,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: time.Minute,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Habits running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
