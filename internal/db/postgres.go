package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'MERCHANT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PAGES
	// -------------------------------
	pagesSQL := `
		CREATE TABLE IF NOT EXISTS pages (
			id SERIAL PRIMARY KEY,
			owner_id UUID NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			title VARCHAR(255) NOT NULL,
			currency VARCHAR(10) NOT NULL DEFAULT 'EUR',
			published BOOLEAN NOT NULL DEFAULT false,
			published_at TIMESTAMP NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (owner_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, pagesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU UPLOADS (one per page)
	// -------------------------------
	menuUploadsSQL := `
		CREATE TABLE IF NOT EXISTS menu_uploads (
			id SERIAL PRIMARY KEY,
			page_id INTEGER UNIQUE NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'MENU_UPLOADED',
			raw_text TEXT NULL,
			parse_source VARCHAR(20) NULL,
			error TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (page_id) REFERENCES pages(id)
		)
	`
	if _, err := db.Exec(ctx, menuUploadsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS (reading order per page)
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			page_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NULL,
			section TEXT NULL,
			description TEXT NULL,
			note TEXT NULL,
			FOREIGN KEY (page_id) REFERENCES pages(id)
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	menuItemsIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_menu_items_page
		ON menu_items (page_id, position)
	`
	if _, err := db.Exec(ctx, menuItemsIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
