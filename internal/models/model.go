package models

import "time"

// AuctionStatus is the lifecycle stage of an auction
type AuctionStatus string

const (
	AuctionPending   AuctionStatus = "pending"
	AuctionActive    AuctionStatus = "active"
	AuctionCompleted AuctionStatus = "completed"
	AuctionCancelled AuctionStatus = "cancelled"
)

// EscrowStatus is the lifecycle stage of an escrow transaction
type EscrowStatus string

const (
	EscrowPending   EscrowStatus = "pending"
	EscrowFunded    EscrowStatus = "funded"
	EscrowReleased  EscrowStatus = "released"
	EscrowCompleted EscrowStatus = "completed"
	EscrowCancelled EscrowStatus = "cancelled"
)

// Auction represents a time-boxed ascending sale of one asset
type Auction struct {
	Asset         string        `json:"asset"`
	Seller        string        `json:"seller"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	StartingPrice uint64        `json:"starting_price"`
	CurrentPrice  uint64        `json:"current_price"`
	HighestBidder string        `json:"highest_bidder,omitempty"`
	Status        AuctionStatus `json:"status"`
	BidCount      int           `json:"bid_count"`
}

// Bid represents an accepted offer on an auction
type Bid struct {
	AuctionID string    `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	Amount    uint64    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// EscrowTransaction holds the terms of a two-party asset sale
type EscrowTransaction struct {
	ID        string       `json:"id"`
	Asset     string       `json:"asset"`
	Seller    string       `json:"seller"`
	Buyer     string       `json:"buyer"`
	Amount    uint64       `json:"amount"`
	Status    EscrowStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// SettlementRecord is the immutable receipt of a completed escrow
type SettlementRecord struct {
	EscrowID        string    `json:"escrow_id"`
	Asset           string    `json:"asset"`
	Seller          string    `json:"seller"`
	Buyer           string    `json:"buyer"`
	Amount          uint64    `json:"amount"`
	SettledAt       time.Time `json:"settled_at"`
	TransactionHash string    `json:"transaction_hash"`
}
