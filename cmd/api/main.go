package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"persona-lab/internal/config"
	"persona-lab/internal/db"
	"persona-lab/internal/email"
	apihttp "persona-lab/internal/http"
	"persona-lab/internal/llm"
	"persona-lab/internal/repository"
	"persona-lab/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	sessionRepo := repository.NewPgSessionRepository(pool)
	responseRepo := repository.NewPgResponseRepository(pool)
	personaRepo := repository.NewPgPersonaRepository(pool)

	var extraction *service.ExtractionService
	if cfg.LLMAPIKey != "" {
		llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMEmbedModel, log.Default())
		extraction = service.NewExtractionService(llmClient, logger)
	}

	var (
		limiter     service.ShareRateLimiter
		reportCache service.ReportCache
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisShareRateLimiter(redisClient, time.Duration(cfg.ShareAttemptWindow)*time.Minute, cfg.ShareAttemptMax)
			reportCache = service.NewRedisReportCache(redisClient)
		}
		cancel()
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	shareTokens := service.NewShareTokenService(cfg.JWTSecret, time.Duration(cfg.ValidatorTokenTTLMins)*time.Minute)

	invites := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			invites = sender
		}
	}

	validationSvc := service.NewValidationService(logger, responseRepo, personaRepo, extraction, reportCache, time.Duration(cfg.ReportCacheTTLMins)*time.Minute)
	sessionSvc := service.NewSessionService(logger, sessionRepo, shareTokens, limiter, invites, cfg.ShareBaseURL, time.Duration(cfg.SessionTTLDays)*24*time.Hour)

	sessionHandler := apihttp.NewSessionHandler(logger, sessionSvc)
	responseHandler := apihttp.NewResponseHandler(logger, validationSvc, extraction)
	reportHandler := apihttp.NewReportHandler(logger, validationSvc, personaRepo)
	router := apihttp.NewRouter(logger, shareTokens, sessionHandler, responseHandler, reportHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
