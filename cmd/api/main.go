package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/turath-search-api/internal/config"
	"github.com/turath-search-api/internal/esquery"
	"github.com/turath-search-api/internal/handlers"
	"github.com/turath-search-api/internal/llm"
	"github.com/turath-search-api/internal/middleware"
	"github.com/turath-search-api/internal/repository/elastic"
	"github.com/turath-search-api/internal/services"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := config.GetConfig()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx := context.Background()

	// The index is the primary value of this service: refuse to serve
	// if it cannot be reached at startup.
	repo, err := elastic.NewSearchRepository(elastic.Config{
		CloudID:   cfg.ElasticCloudID,
		Addresses: cfg.ElasticAddresses,
		Username:  cfg.ElasticUsername,
		Password:  cfg.ElasticPassword,
		Index:     cfg.IndexName,
		Timeout:   cfg.SearchTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create elasticsearch repository")
	}
	if err := repo.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("elasticsearch is unreachable")
	}
	log.Info().Str("index", cfg.IndexName).Msg("connected to elasticsearch")

	// Answer backends: absent credentials disable a field, never the process
	claude := llm.NewClaudeFromConfig(cfg)
	gemini, err := llm.NewGeminiFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize gemini backend")
	}

	retrievalSvc := services.NewRetrievalService(repo, esquery.NewBuilder(cfg.Boosts))
	answerSvc := services.NewAnswerService(claude, gemini, cfg.AnswerTimeout)
	navigationSvc := services.NewNavigationService(repo)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	handlers.NewAskHandler(retrievalSvc, answerSvc).RegisterRoutes(e)
	handlers.NewBookHandler(navigationSvc).RegisterRoutes(e)
	handlers.NewHealthHandler(repo).RegisterRoutes(e)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info().Str("addr", addr).Msgf("starting %s v%s", cfg.APITitle, cfg.APIVersion)
		if err := e.Start(addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	// The Gemini backends hold a gRPC connection
	if closer, ok := gemini.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("error closing gemini client")
		}
	}

	log.Info().Msg("server stopped")
}
