package helpers

import (
	"time"

	market "domain-market/internal/marketService"
	"domain-market/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Asset         string    `json:"asset" binding:"required"`
	Seller        string    `json:"seller" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	StartingPrice uint64    `json:"starting_price"`
}

type PlaceBidRequest struct {
	Bidder string `json:"bidder" binding:"required"`
	Amount uint64 `json:"amount"`
}

type CreateEscrowRequest struct {
	Asset  string `json:"asset" binding:"required"`
	Seller string `json:"seller" binding:"required"`
	Buyer  string `json:"buyer" binding:"required"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

type SettleEscrowRequest struct {
	TransactionHash string `json:"transaction_hash" binding:"required"`
}

type RegisterAssetRequest struct {
	Asset string `json:"asset" binding:"required"`
	Owner string `json:"owner" binding:"required"`
}

type TransferAssetRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type VerifyOwnershipRequest struct {
	Address string `json:"address" binding:"required"`
}

type AuctionResponse struct {
	Asset         string `json:"asset"`
	Seller        string `json:"seller"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	StartingPrice uint64 `json:"starting_price"`
	CurrentPrice  uint64 `json:"current_price"`
	HighestBidder string `json:"highest_bidder"`
	Status        string `json:"status"`
	BidCount      int    `json:"bid_count"`
}

type BidResponse struct {
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	Amount    uint64 `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type AuctionOutcomeResponse struct {
	Auction  AuctionResponse `json:"auction"`
	Winner   BidResponse     `json:"winner"`
	EscrowID string          `json:"escrow_id,omitempty"`
}

type EscrowResponse struct {
	ID        string `json:"id"`
	Asset     string `json:"asset"`
	Seller    string `json:"seller"`
	Buyer     string `json:"buyer"`
	Amount    uint64 `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type SettlementResponse struct {
	EscrowID        string `json:"escrow_id"`
	Asset           string `json:"asset"`
	Seller          string `json:"seller"`
	Buyer           string `json:"buyer"`
	Amount          uint64 `json:"amount"`
	SettledAt       string `json:"settled_at"`
	TransactionHash string `json:"transaction_hash"`
}

type AssetResponse struct {
	Asset        string `json:"asset"`
	Owner        string `json:"owner"`
	RegisteredAt string `json:"registered_at"`
	UpdatedAt    string `json:"updated_at"`
}

type OwnershipTransactionResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Asset     string `json:"asset"`
	From      string `json:"from"`
	To        string `json:"to,omitempty"`
	Amount    uint64 `json:"amount,omitempty"`
	Timestamp string `json:"timestamp"`
}

type VerificationResponse struct {
	Asset      string `json:"asset"`
	Owner      string `json:"owner"`
	VerifiedBy string `json:"verified_by"`
	IsOwner    bool   `json:"is_owner"`
	VerifiedAt string `json:"verified_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ToAuctionResponse(a models.Auction) AuctionResponse {
	return AuctionResponse{
		Asset:         a.Asset,
		Seller:        a.Seller,
		StartTime:     formatTime(a.StartTime),
		EndTime:       formatTime(a.EndTime),
		StartingPrice: a.StartingPrice,
		CurrentPrice:  a.CurrentPrice,
		HighestBidder: a.HighestBidder,
		Status:        string(a.Status),
		BidCount:      a.BidCount,
	}
}

func ToBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		AuctionID: b.AuctionID,
		Bidder:    b.Bidder,
		Amount:    b.Amount,
		CreatedAt: formatTime(b.Timestamp),
	}
}

func ToAuctionOutcomeResponse(o market.AuctionOutcome) AuctionOutcomeResponse {
	return AuctionOutcomeResponse{
		Auction:  ToAuctionResponse(o.Auction),
		Winner:   ToBidResponse(o.Winner),
		EscrowID: o.EscrowID,
	}
}

func ToEscrowResponse(tx models.EscrowTransaction) EscrowResponse {
	return EscrowResponse{
		ID:        tx.ID,
		Asset:     tx.Asset,
		Seller:    tx.Seller,
		Buyer:     tx.Buyer,
		Amount:    tx.Amount,
		Status:    string(tx.Status),
		CreatedAt: formatTime(tx.CreatedAt),
		UpdatedAt: formatTime(tx.UpdatedAt),
	}
}

func ToSettlementResponse(r models.SettlementRecord) SettlementResponse {
	return SettlementResponse{
		EscrowID:        r.EscrowID,
		Asset:           r.Asset,
		Seller:          r.Seller,
		Buyer:           r.Buyer,
		Amount:          r.Amount,
		SettledAt:       formatTime(r.SettledAt),
		TransactionHash: r.TransactionHash,
	}
}

func ToAssetResponse(r models.Registration) AssetResponse {
	return AssetResponse{
		Asset:        r.Asset,
		Owner:        r.Owner,
		RegisteredAt: formatTime(r.RegisteredAt),
		UpdatedAt:    formatTime(r.UpdatedAt),
	}
}

func ToOwnershipTransactionResponse(tx models.OwnershipTransaction) OwnershipTransactionResponse {
	return OwnershipTransactionResponse{
		ID:        tx.ID,
		Type:      string(tx.Type),
		Asset:     tx.Asset,
		From:      tx.From,
		To:        tx.To,
		Amount:    tx.Amount,
		Timestamp: formatTime(tx.Timestamp),
	}
}

func ToVerificationResponse(v models.VerificationRecord) VerificationResponse {
	return VerificationResponse{
		Asset:      v.Asset,
		Owner:      v.Owner,
		VerifiedBy: v.VerifiedBy,
		IsOwner:    v.IsOwner,
		VerifiedAt: formatTime(v.VerifiedAt),
	}
}
