package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	authpostgres "github.com/cantinota/noleggio-api/internal/domains/auth/adapters/persistence/postgres"
	authdomain "github.com/cantinota/noleggio-api/internal/domains/auth/domain"
	authports "github.com/cantinota/noleggio-api/internal/domains/auth/ports"
	platformmigrations "github.com/cantinota/noleggio-api/internal/platform/migrations"
	platformpostgres "github.com/cantinota/noleggio-api/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = godotenv.Load()
	db, err := platformpostgres.Connect(ctx, os.Getenv("POSTGRES_DSN"))
	if err != nil {
		log.Fatalf("cannot connect to postgres: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := platformmigrations.Run(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Printf("migrations completed")

	if err := seedAdmin(ctx, authpostgres.NewRepository(db)); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
}

// seedAdmin creates the bootstrap admin account when ADMIN_USERNAME and
// ADMIN_PASSWORD are set and the account does not already exist.
func seedAdmin(ctx context.Context, repo authports.Repository) error {
	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}
	if _, err := repo.GetByUsername(ctx, username); err == nil {
		log.Printf("admin %q already present, skipping seed", username)
		return nil
	}
	hash, err := authdomain.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := repo.Save(ctx, &authdomain.Admin{Username: username, Password: hash}); err != nil {
		return err
	}
	log.Printf("admin %q seeded", username)
	return nil
}
