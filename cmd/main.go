package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/liliang-cn/sqvect/v2/pkg/sqvect"
	"go.uber.org/zap"

	"github.com/kuehq/kue-brain/internal/api/mastermind"
	"github.com/kuehq/kue-brain/internal/config"
	"github.com/kuehq/kue-brain/internal/core"
	"github.com/kuehq/kue-brain/internal/corpus"
	"github.com/kuehq/kue-brain/internal/embedder"
	"github.com/kuehq/kue-brain/internal/engine"
	"github.com/kuehq/kue-brain/internal/llm"
	"github.com/kuehq/kue-brain/internal/loaders"
	"github.com/kuehq/kue-brain/internal/routes"
	"github.com/kuehq/kue-brain/internal/stylemem"
	"github.com/kuehq/kue-brain/internal/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Warning: Error loading .env file", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	cleanup := utils.InitLogger(cfg)
	defer cleanup()

	utils.Zlog.Info("Starting application",
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.ServerPort))

	ctx := context.Background()

	// Chat provider: credential presence decides LIVE vs MOCK, once, here.
	provider := buildProvider(ctx, cfg)

	memory, err := buildStyleMemory(ctx, cfg)
	if err != nil {
		utils.Zlog.Error("Failed to initialize style memory", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := memory.Close(); err != nil {
			utils.Zlog.Error("Error closing style memory", zap.Error(err))
		}
	}()

	eng := engine.New(provider, memory, cfg.ChatModel)
	if eng.Mode() == engine.ModeLive {
		utils.Zlog.Info("SYSTEM: LIVE MODE (Real AI Active)", zap.String("provider", cfg.LLMProvider))
	} else {
		utils.Zlog.Warn("SYSTEM: MOCK MODE (Demo Data Active)")
	}

	// Exchange history is optional: enabled only when DATABASE_URL is set.
	var saver *core.ExchangeSaver
	if cfg.DatabaseURL != "" {
		db, err := loaders.NewPostgresClient(cfg.DatabaseURL)
		if err != nil {
			utils.Zlog.Error("Failed to create database client", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := db.Close(); err != nil {
				utils.Zlog.Error("Error closing database connection", zap.Error(err))
			}
		}()
		saver = core.NewExchangeSaver(db)
		defer saver.Stop()
	}

	svc := mastermind.NewService(eng, saver)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	routes.SetupRoutes(router, eng, svc, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Zlog.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Zlog.Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Zlog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Zlog.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	utils.Zlog.Info("Server exited")
}

// buildProvider returns nil when the selected backend has no credential,
// which pins the engine to mock mode for the process lifetime.
func buildProvider(ctx context.Context, cfg *config.Config) llm.Provider {
	switch cfg.LLMProvider {
	case "gemini":
		if len(cfg.GeminiAPIKeys) == 0 {
			return nil
		}
		temperature := float32(0.7)
		maxTokens := 1024
		p, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKeys, cfg.ChatModel, &temperature, &maxTokens)
		if err != nil {
			utils.Zlog.Error("Failed to create Gemini provider, falling back to mock mode", zap.Error(err))
			return nil
		}
		return p
	default:
		if cfg.OpenAIAPIKey == "" {
			return nil
		}
		p, err := llm.NewOpenAIProvider(cfg.OpenAIAPIKey)
		if err != nil {
			utils.Zlog.Error("Failed to create OpenAI provider, falling back to mock mode", zap.Error(err))
			return nil
		}
		return p
	}
}

func buildStyleMemory(ctx context.Context, cfg *config.Config) (*stylemem.Memory, error) {
	var emb sqvect.Embedder
	if len(cfg.GeminiAPIKeys) > 0 {
		gemEmb, err := embedder.NewGeminiEmbedder(cfg.GeminiAPIKeys)
		if err != nil {
			return nil, err
		}
		emb = gemEmb
	} else {
		emb = embedder.NewLocalEmbedder()
	}

	memory, err := stylemem.Open(cfg.StyleDBPath, emb)
	if err != nil {
		return nil, err
	}

	samples, err := corpus.LoadFile(cfg.StyleCorpusPath)
	if err != nil {
		utils.Zlog.Warn("Style corpus not loaded", zap.Error(err))
		return memory, nil
	}
	if samples == nil {
		utils.Zlog.Info("No style corpus configured, memory starts empty")
		return memory, nil
	}

	if err := memory.Load(ctx, samples); err != nil {
		utils.Zlog.Warn("Failed to load style corpus", zap.Error(err))
	}
	return memory, nil
}
