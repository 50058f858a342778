package handler

import (
	"context"
	"time"

	market "domain-market/internal/marketService"
	"domain-market/internal/models"
)

//go:generate mockgen -source=market_handler.go -destination=mock_market_handler.go -package=handler

type MarketServiceInterface interface {
	CreateAuction(asset, seller string, start, end time.Time, startingPrice uint64) (models.Auction, error)
	ActivateAuction(asset string) (models.Auction, error)
	CancelAuction(asset string) (models.Auction, error)
	PlaceBid(asset, bidder string, amount uint64) (models.Bid, error)
	SettleAuction(ctx context.Context, asset string) (market.AuctionOutcome, error)
	GetAuction(asset string) (models.Auction, error)
	GetBids(asset string) ([]models.Bid, error)
	ListAuctions(status models.AuctionStatus) []models.Auction

	CreateEscrow(asset, seller, buyer string, amount uint64) (models.EscrowTransaction, error)
	FundEscrow(id string) (models.EscrowTransaction, error)
	ReleaseEscrow(id string) (models.EscrowTransaction, error)
	CancelEscrow(id string) (models.EscrowTransaction, error)
	SettleEscrow(id, proof string) (models.SettlementRecord, error)
	GetEscrow(id string) (models.EscrowTransaction, error)
	GetSettlement(id string) (models.SettlementRecord, error)
	VerifySettlement(ctx context.Context, id string) (models.SettlementRecord, error)

	RegisterAsset(asset, owner string) (models.Registration, error)
	GetAsset(asset string) (models.Registration, error)
	TransferAsset(asset, from, to string) (models.OwnershipTransaction, error)
	VerifyOwnership(asset, address string) (models.VerificationRecord, error)
	AssetHistory(asset string) ([]models.OwnershipTransaction, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}
