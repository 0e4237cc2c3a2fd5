package auth

import (
	"github.com/devhubhq/server/internal/config"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.Engine, store UserStore, cfg *config.Config) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/start", StartHandler())
		authGroup.GET("/callback", CallbackHandler(store, cfg))
		authGroup.GET("/failure", FailureHandler())
		authGroup.GET("/logout", LogoutHandler(cfg))
	}
}
