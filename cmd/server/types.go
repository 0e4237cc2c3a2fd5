package main

import (
	"github.com/devhubhq/server/devhub/listings"
	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/config"
	"github.com/devhubhq/server/internal/githubapi"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	listingRepo *listings.Repository
	github      *githubapi.Client
	router      *gin.Engine
}
