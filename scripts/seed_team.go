package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/maslima80/listingshow/pkg/auth"
)

func main() {
	fmt.Println("adding team and agent into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	TEAM_NAME := os.Getenv("SEED_TEAM_NAME")
	AGENT_EMAIL := os.Getenv("SEED_AGENT_EMAIL")
	AGENT_PASSWORD := os.Getenv("SEED_AGENT_PASSWORD")

	hash, err := auth.HashPassword(AGENT_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	teamID := uuid.New()
	teamQuery := `
		INSERT INTO teams (id, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = $2
		RETURNING id
	`
	err = pool.QueryRow(context.Background(), teamQuery, teamID, TEAM_NAME, slugFromName(TEAM_NAME)).Scan(&teamID)
	if err != nil {
		log.Fatalf("cannot add team: %v", err)
	}

	userQuery := `
		INSERT INTO users (id, team_id, email, name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET password_hash = $5
	`
	_, err = pool.Exec(context.Background(), userQuery, uuid.New(), teamID, AGENT_EMAIL, "Agent", hash)
	if err != nil {
		log.Fatalf("cannot add agent: %v", err)
	}

	fmt.Printf("added or updated team '%s' with agent '%s' successfully!\n", TEAM_NAME, AGENT_EMAIL)
}

func slugFromName(name string) string {
	slug := ""
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			slug += string(r + 32)
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug += string(r)
		case r == ' ' || r == '-':
			slug += "-"
		}
	}
	return slug
}
