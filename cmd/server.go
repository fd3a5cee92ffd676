package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"suitax/internal/ai"
	"suitax/internal/config"
	"suitax/internal/core"
	"suitax/internal/db"
	"suitax/internal/http/handler"
	"suitax/internal/http/handler/middleware"
	"suitax/internal/http/payload"
	"suitax/internal/http/server"
	"suitax/internal/repository"
	"suitax/internal/sui"
	"suitax/internal/tax"
	"suitax/pkg/jwt"
	"suitax/pkg/log"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	// best effort, env vars may come from the environment directly
	_ = godotenv.Load()

	logger := log.NewZapLogger("suitax", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// repositories
	cacheRepo := repository.NewCacheRepository(dbConn, cfg.TransactionCacheTTL, cfg.TaxRatesCacheTTL)
	if err = cacheRepo.Migrate(); err != nil {
		logger.Errorw("failed to migrate cache tables", "error", err)
		return err
	}

	userRepo := repository.NewUserRepository(dbConn)
	if err = userRepo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed user table", "error", err)
		return err
	}

	// sui node access
	rpcClient := sui.NewClient(cfg.Endpoints)
	nodeService := sui.NewNodeService(logger, rpcClient, cacheRepo)
	detector := sui.NewDetector(logger, nodeService)
	paginator := sui.NewPaginator(logger, nodeService, cfg.BatchSize, cfg.RequestDelay)
	parser := sui.NewParser(logger)

	// ai classification, rates and advice (falls back without a key)
	var llm ai.LLMClient
	if cfg.OpenAIKey != "" {
		llm = openai.NewClient(cfg.OpenAIKey)
	} else {
		logger.Infow("no OpenAI key configured, using deterministic fallbacks")
	}
	aiService := ai.NewService(logger, llm, cacheRepo, cfg.OpenAIModel)

	batchProcessor := sui.NewBatchProcessor(
		logger,
		nodeService,
		parser,
		aiService,
		cfg.BatchSize,
		cfg.MaxConcurrent,
		2*cfg.RequestDelay)

	aggregator := tax.NewAggregator(logger, aiService, aiService)

	// analyzer
	analyzer := core.NewAnalyzer(
		logger,
		userRepo,
		jwtService,
		detector,
		nodeService,
		parser,
		aiService,
		paginator,
		batchProcessor,
		aggregator,
		aiService)

	// handler
	taxHlr := handler.NewTaxHandler(
		logger,
		payload.DecodeValidator{},
		analyzer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRateLimitMiddleware(logger, 10, 20).RateLimit(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, taxHlr.HandleAuthenticate)
	mux.HandleFunc(handler.Analyze, taxHlr.HandleAnalyze)
	mux.HandleFunc(handler.BatchAnalysis, taxHlr.HandleBatchAnalysis)
	mux.HandleFunc(handler.TaxRates, taxHlr.HandleTaxRates)
	mux.HandleFunc(handler.SupportedFeatures, taxHlr.HandleSupportedFeatures)
	mux.HandleFunc(handler.Health, taxHlr.HandleHealth)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
