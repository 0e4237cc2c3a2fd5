package main

import (
	"time"

	restauth "github.com/devhubhq/server/api/rest/auth"
	"github.com/devhubhq/server/api/rest/health"
	restlistings "github.com/devhubhq/server/api/rest/listings"
	restusers "github.com/devhubhq/server/api/rest/users"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{server.config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// per-client rate limit across the whole API
	router.Use(mgin.NewMiddleware(limiter.New(
		memory.NewStore(),
		limiter.Rate{Period: 1 * time.Minute, Limit: 300},
	)))

	router.GET("/health", health.Handler)

	restauth.RegisterRoutes(router, server.userRepo, server.config)
	restusers.RegisterRoutes(router, server.userRepo, server.github)
	restlistings.RegisterRoutes(router, server.listingRepo, server.userRepo)
}
