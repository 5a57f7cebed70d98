package main

import (
	"context"
	"log"
	"os"

	"tierless/internal/auth"
	"tierless/internal/db"
	"tierless/internal/llm"
	"tierless/internal/menu"
	"tierless/internal/ocr"
	"tierless/internal/page"
	"tierless/internal/router"
	"tierless/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	pageRepo := page.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	ocrRepo := ocr.NewRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	menuService := menu.NewService(menuRepo, r2Client, pageRepo)
	pageService := page.NewService(pageRepo, menuService)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	menuHandler := menu.NewHandler(menuService)
	pageHandler := page.NewHandler(pageService)

	// ───────────────────────── OCR + STRUCTURING WORKERS ─────────────────────────
	llmClient := llm.NewGeminiClient()
	ocrService := ocr.NewService(ocrRepo, llmClient, menuService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go ocrService.RunOCRWorker(ctx)
	go ocrService.RunParseWorker(ctx)

	// ───────────────────────── START ─────────────────────────
	r := router.NewRouter(authHandler, menuHandler, pageHandler)

	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
