package listings

import (
	"github.com/devhubhq/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all listing routes
func RegisterRoutes(router *gin.Engine, store Store, resolver OwnerResolver) {
	listingsGroup := router.Group("/listings")
	{
		listingsGroup.GET("/public", PublicListingsHandler(store))
		listingsGroup.GET("/recent", RecentOwnersHandler(store))
		listingsGroup.GET("/user/:name", auth.OptionalAuthMiddleware(), UserListingsHandler(store))
		listingsGroup.POST("/create", CreateListingHandler(store, resolver))
		listingsGroup.DELETE("/:id", auth.OptionalAuthMiddleware(), DeleteListingHandler(store, resolver))
	}
}
