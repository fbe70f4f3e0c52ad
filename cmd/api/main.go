package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ai-hunter/internal/config"
	"ai-hunter/internal/db"
	apihttp "ai-hunter/internal/http"
	"ai-hunter/internal/llm"
	"ai-hunter/internal/pdf"
	"ai-hunter/internal/report"
	"ai-hunter/internal/repository"
	"ai-hunter/internal/service"
	"ai-hunter/internal/webhook"
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

	// Banco é opcional: sem ele o diagnóstico roda sem persistência.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL não configurada, executando sem banco de dados")
	} else if p, err := db.NewPool(ctx, cfg); err != nil {
		logger.Warn("banco indisponível, seguindo sem persistência", zap.Error(err))
	} else if err := db.Ping(ctx, p); err != nil {
		logger.Warn("ping no banco falhou, seguindo sem persistência", zap.Error(err))
		p.Close()
	} else {
		logger.Info("pool de conexões pronto")
		pool = p
		defer pool.Close()
	}

	var leadRepo repository.LeadRepository
	if pool != nil {
		leadRepo = repository.NewPgLeadRepository(pool)
	}

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("LLM_API_KEY não configurada, relatórios usarão conteúdo de fallback")
	}

	var limiter service.LeadRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping falhou, seguindo sem rate limit", zap.Error(err))
		} else {
			limiter = service.NewRedisLeadRateLimiter(
				redisClient,
				time.Duration(cfg.RateLimitWindowMinutes)*time.Minute,
				cfg.RateLimitMax,
			)
		}
		cancel()
	}

	pdfRenderer := pdf.NewDisabledRenderer("conversão de PDF desabilitada")
	if cfg.PDFEnabled {
		pdfRenderer = pdf.NewWkhtmlRenderer()
	}

	dispatcher := webhook.NewDispatcher(cfg.WebhookURL, pdfRenderer, logger)
	recommender := service.NewRecommendationService(llmClient, logger)
	diagnostics := service.NewDiagnosticService(recommender, leadRepo, report.NewHTMLRenderer(), dispatcher, logger)

	diagHandler := apihttp.NewDiagnosticHandler(logger, diagnostics, limiter)
	healthHandler := apihttp.NewHealthHandler(logger, pool)
	router := apihttp.NewRouter(logger, diagHandler, healthHandler)

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
