package server

import (
	auth "rewear/internal/authService"
	listing "rewear/internal/listingService"
	settlement "rewear/internal/settlementService"
	"rewear/internal/token"
	handler "rewear/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	authSvc *auth.AuthService,
	listingSvc *listing.ListingService,
	settlementSvc *settlement.SettlementService,
	tokens *token.Service,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(authSvc)
	listingHandler := handler.NewListingHandler(listingSvc)
	swapHandler := handler.NewSwapHandler(settlementSvc)
	adminHandler := handler.NewAdminHandler(listingSvc, authSvc, settlementSvc)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterHandler)
		authRoutes.POST("/login", authHandler.LoginHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", listingHandler.BrowseItemsHandler)
		items.GET("/:item_id", listingHandler.GetItemHandler)
		items.POST("", AuthRequired(tokens), listingHandler.CreateItemHandler)
		items.DELETE("/:item_id", AuthRequired(tokens), listingHandler.DeleteItemHandler)
		items.POST("/:item_id/redeem", AuthRequired(tokens), swapHandler.RedeemItemHandler)
	}

	me := router.Group("/me", AuthRequired(tokens))
	{
		me.GET("", authHandler.MeHandler)
		me.GET("/items", listingHandler.MyItemsHandler)
		me.GET("/swaps", swapHandler.MySwapsHandler)
		me.GET("/requests", swapHandler.IncomingRequestsHandler)
	}

	swaps := router.Group("/swaps", AuthRequired(tokens))
	{
		swaps.POST("", swapHandler.ProposeSwapHandler)
		swaps.POST("/:swap_id/decision", swapHandler.DecideSwapHandler)
	}

	admin := router.Group("/admin", AuthRequired(tokens), AdminRequired)
	{
		admin.GET("/items/pending", adminHandler.PendingItemsHandler)
		admin.POST("/items/:item_id/moderate", adminHandler.ModerateItemHandler)
		admin.GET("/users", adminHandler.ListUsersHandler)
		admin.GET("/swaps", adminHandler.ListSwapsHandler)
	}

	return router
}
