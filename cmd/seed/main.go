package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/registration-api/config"
	"github.com/oksasatya/registration-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newID, err := uuid.NewV7()
	if err != nil {
		log.Fatalf("failed to generate id: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO account (id, email, password_hash, is_activated)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET is_activated = true, updated_at = now()
		RETURNING id
	`, newID.String(), email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	fmt.Printf("seeded activated account: id=%s email=%s password=%s\n", id, email, password)
}
