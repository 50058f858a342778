package server

import (
	handler "domain-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService handler.MarketServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", marketHandler.CreateAuctionHandler)
		auctions.GET("", marketHandler.ListAuctionsHandler)
		auctions.GET("/:asset", marketHandler.GetAuctionHandler)
		auctions.POST("/:asset/activate", marketHandler.ActivateAuctionHandler)
		auctions.POST("/:asset/cancel", marketHandler.CancelAuctionHandler)
		auctions.POST("/:asset/bids", marketHandler.PlaceBidHandler)
		auctions.GET("/:asset/bids", marketHandler.GetBidsHandler)
		auctions.POST("/:asset/settle", marketHandler.SettleAuctionHandler)
	}

	escrows := router.Group("/escrows")
	{
		escrows.POST("", marketHandler.CreateEscrowHandler)
		escrows.GET("/:id", marketHandler.GetEscrowHandler)
		escrows.POST("/:id/fund", marketHandler.FundEscrowHandler)
		escrows.POST("/:id/release", marketHandler.ReleaseEscrowHandler)
		escrows.POST("/:id/cancel", marketHandler.CancelEscrowHandler)
		escrows.POST("/:id/settle", marketHandler.SettleEscrowHandler)
		escrows.GET("/:id/settlement", marketHandler.GetSettlementHandler)
		escrows.POST("/:id/settlement/verify", marketHandler.VerifySettlementHandler)
	}

	assets := router.Group("/assets")
	{
		assets.POST("", marketHandler.RegisterAssetHandler)
		assets.GET("/:asset", marketHandler.GetAssetHandler)
		assets.POST("/:asset/transfer", marketHandler.TransferAssetHandler)
		assets.POST("/:asset/verify", marketHandler.VerifyOwnershipHandler)
		assets.GET("/:asset/history", marketHandler.AssetHistoryHandler)
	}

	return router
}
