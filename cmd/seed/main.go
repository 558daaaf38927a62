package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/auth-service/config"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/pkg/helpers"
)

// Seeds the initial sudo user. Idempotent: if a user with the configured
// email already exists, nothing is written.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.SudoPassword == "" {
		log.Fatal("SUDO_USER_PASSWORD is required to seed the sudo user")
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var existing string
	err = db.QueryRow(`SELECT id FROM "user" WHERE email = $1`, cfg.SudoEmail).Scan(&existing)
	if err == nil {
		fmt.Printf("sudo user already exists: id=%s email=%s\n", existing, cfg.SudoEmail)
		return
	}
	if err != sql.ErrNoRows {
		log.Fatalf("failed to check sudo user: %v", err)
	}

	hash, err := helpers.HashPassword(cfg.SudoPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO "user" (id, email, first_name, last_name, password_hash, type, status, is_email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		RETURNING id
	`, uuid.NewString(), cfg.SudoEmail, cfg.SudoFirstName, cfg.SudoLastName, hash,
		string(entity.UserTypeSudo), string(entity.UserStatusActive)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed sudo user: %v", err)
	}
	fmt.Printf("seeded sudo user: id=%s email=%s\n", id, cfg.SudoEmail)
}
