package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Generates a session token for an existing user, for exercising the API
// locally with curl:
//
//	go run scripts/gen_test_token.go <github_id>
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/gen_test_token.go <github_id>")
	}
	githubID := os.Args[1]

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := users.NewRepository(dbPool)
	user, err := repo.FindByGitHubID(context.Background(), githubID)
	if err != nil {
		log.Fatalf("Failed to find user %s: %v", githubID, err)
	}

	token, err := auth.GenerateJWT(user.GitHubID, user.Name, user.Email)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("User:  %s (github_id %s)\n", user.Name, user.GitHubID)
	fmt.Printf("Token: %s\n", token)
	fmt.Printf("\ncurl -H \"Authorization: Bearer %s\" http://localhost:8080/api/users/me\n", token)
}
