package users

import (
	"github.com/devhubhq/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all user and profile routes
func RegisterRoutes(router *gin.Engine, store Store, lister RepoLister) {
	usersGroup := router.Group("/api/users")
	{
		usersGroup.GET("/me", auth.AuthMiddleware(), MeHandler(store))
		usersGroup.POST("/me/profile-update", auth.AuthMiddleware(), UpdateProfileHandler(store))
		usersGroup.GET("/me/repos", auth.AuthMiddleware(), MyReposHandler(store, lister))

		// public profile lookup; gin resolves the static /me siblings first
		usersGroup.GET("/:name", ProfileByNameHandler(store))
	}
}
