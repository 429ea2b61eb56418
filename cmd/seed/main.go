package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/diligence-app/diligence-backend/config"
	"github.com/diligence-app/diligence-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@diligence.app"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, name, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	samples := []struct {
		title    string
		duration int
		category string
		color    string
	}{
		{"Deep work", 90, "Work", "blue"},
		{"Morning run", 45, "Health", "green"},
		{"Read", 30, "Personal", "purple"},
	}
	for _, t := range samples {
		if _, err := db.Exec(`
			INSERT INTO tasks (user_id, title, duration_minutes, category, color)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (
				SELECT 1 FROM tasks WHERE user_id = $1 AND title = $2
			)
		`, id, t.title, t.duration, t.category, t.color); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}
	fmt.Println("seeded sample tasks")
}
