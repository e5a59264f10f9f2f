package main

import (
	"context"
	"fmt"
	"log"

	"settermind/internal/config"
	"settermind/internal/db"
	"settermind/internal/models"
	"settermind/internal/pipeline"
	"settermind/internal/pkg/apify"
	"settermind/internal/pkg/instagram"
	"settermind/internal/pkg/llm"
	"settermind/internal/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(dbConn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider: %v", err)
	}

	// Provider clients are built once and injected; nothing reads them as
	// ambient globals.
	pl := pipeline.New(dbConn, apify.New(cfg.ApifyToken), instagram.New(), gen)

	router := routes.SetupRouter(dbConn, cfg, pl)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newGenerator(cfg *config.Config) (llm.TextGenerator, error) {
	switch cfg.LLMProvider {
	case "openai":
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel), nil
	case "gemini", "":
		return llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
