package main

import (
	"context"
	"log"
	"os"

	"tierless/internal/db"
	"tierless/internal/llm"
	"tierless/internal/menu"
	"tierless/internal/ocr"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🧠 OCR Worker starting...")

	for _, k := range []string{"DATABASE_URL", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// OCR + structuring services
	menuRepo := menu.NewPostgresRepository(pgDB)
	menuService := menu.NewService(menuRepo, nil, nil)

	ocrRepo := ocr.NewRepository(pgDB)
	service := ocr.NewService(ocrRepo, llm.NewGeminiClient(), menuService)

	log.Println("✅ OCR Worker initialized and running...")
	log.Println("Processing menu uploads every 2 seconds. Press Ctrl+C to stop.")

	ctx := context.Background()

	go service.RunOCRWorker(ctx)
	service.RunParseWorker(ctx)
}
