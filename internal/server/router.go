package server

import (
	handler "listing-engine/services/listing/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. Registry writes
// and listing cancellation sit behind the admin JWT middleware.
func SetupRouter(service handler.ListingServiceInterface, adminSecret string, displayDecimals int32) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	listingHandler := handler.NewListingHandler(service, displayDecimals)
	adminOnly := AdminAuthMiddleware(adminSecret)

	listings := router.Group("/listings")
	{
		listings.POST("", listingHandler.CreateListingHandler)
		listings.GET("", listingHandler.ListListingsHandler)
		listings.GET("/:listing_id", listingHandler.GetListingHandler)
		listings.POST("/:listing_id/buyers", listingHandler.JoinBuyerHandler)
		listings.DELETE("/:listing_id/buyers/:address", listingHandler.LeaveBuyerHandler)
		listings.POST("/:listing_id/suppliers", listingHandler.JoinSupplierHandler)
		listings.POST("/:listing_id/reveals", listingHandler.RevealBidHandler)
		listings.POST("/:listing_id/settlement", listingHandler.SettleHandler)
		listings.POST("/:listing_id/withdrawals", listingHandler.WithdrawHandler)
		listings.GET("/:listing_id/events", listingHandler.GetEventsHandler)
		listings.POST("/:listing_id/cancellation", adminOnly, listingHandler.CancelHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:address", listingHandler.GetUserHandler)
		users.POST("", adminOnly, listingHandler.AddUserHandler)
		users.DELETE("/:address", adminOnly, listingHandler.RemoveUserHandler)
	}

	tokens := router.Group("/tokens")
	{
		tokens.GET("/:token_id", listingHandler.GetTokenHandler)
		tokens.POST("/:token_id/transfers", listingHandler.TransferTokenHandler)
	}

	return router
}
