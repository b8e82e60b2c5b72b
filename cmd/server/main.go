package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpAdapter "github.com/koboapp/kobo/internal/adapter/http"
	"github.com/koboapp/kobo/internal/adapter/http/handler"
	postgresRepo "github.com/koboapp/kobo/internal/adapter/repository/postgres"
	redisRepo "github.com/koboapp/kobo/internal/adapter/repository/redis"
	"github.com/koboapp/kobo/internal/infrastructure/auth"
	"github.com/koboapp/kobo/internal/infrastructure/config"
	"github.com/koboapp/kobo/internal/infrastructure/logger"
	"github.com/koboapp/kobo/internal/infrastructure/postgres"
	"github.com/koboapp/kobo/internal/infrastructure/redis"
	"github.com/koboapp/kobo/internal/mailer"
	"github.com/koboapp/kobo/internal/rates"
	"github.com/koboapp/kobo/internal/scheduler"
	"github.com/koboapp/kobo/internal/usecase"
)

func main() {
	// Local development convenience, ignored when the file is absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	userRepo := postgresRepo.NewUserRepository(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	incomeRepo := postgresRepo.NewIncomeRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	subscriptionRepo := postgresRepo.NewSubscriptionRepository(pool)
	savingsRepo := postgresRepo.NewSavingsRepository(pool)
	allocationRepo := postgresRepo.NewAllocationRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Exchange rates, shared across instances through redis
	rateFetcher := rates.NewClient(cfg.RateAPIURL, cfg.RateFetchTimeout, log)
	rateCache := rates.NewCache(rateFetcher, redisRepo.NewRateStore(redisClient), cfg.RateTTL, log)

	// Mailer
	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}, log)

	// Use cases
	userUC := usecase.NewUserUseCase(userRepo, settingsRepo, txManager, retrier, idGen)
	incomeUC := usecase.NewIncomeUseCase(incomeRepo, idGen)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, idGen)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo, idGen)
	savingsUC := usecase.NewSavingsUseCase(savingsRepo, idGen)
	allocationUC := usecase.NewAllocationUseCase(allocationRepo, savingsRepo, idGen)
	dashboardUC := usecase.NewDashboardUseCase(incomeRepo, expenseRepo, subscriptionRepo, allocationRepo, savingsRepo, rateCache)
	currencyUC := usecase.NewCurrencyUseCase(rateCache)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	reminderUC := usecase.NewReminderUseCase(settingsRepo, savingsRepo, smtpMailer, log)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:         handler.NewAuthHandler(userUC, jwtManager),
		ExpenseHandler:      handler.NewExpenseHandler(expenseUC),
		IncomeHandler:       handler.NewIncomeHandler(incomeUC),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionUC),
		SavingsHandler:      handler.NewSavingsHandler(savingsUC),
		AllocationHandler:   handler.NewAllocationHandler(allocationUC),
		DashboardHandler:    handler.NewDashboardHandler(dashboardUC),
		CurrencyHandler:     handler.NewCurrencyHandler(currencyUC),
		CalculatorHandler:   handler.NewCalculatorHandler(),
		SettingsHandler:     handler.NewSettingsHandler(settingsUC),
		CronHandler:         handler.NewCronHandler(reminderUC, cfg.CronSecret),
		HealthHandler:       handler.NewHealthHandler(pool, redisClient),
		JWTManager:          jwtManager,
		IdempotencyStore:    idempotencyStore,
		Logger:              log,
	})

	// In-process reminder schedule
	var sched *scheduler.Scheduler
	if cfg.ReminderSchedule != "" {
		sched = scheduler.New(log)
		job := scheduler.NewReminderJob(reminderUC, 5*time.Minute)
		if err := sched.AddJob(cfg.ReminderSchedule, job); err != nil {
			log.Fatal().Err(err).Msg("invalid reminder schedule")
		}
		sched.Start()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
