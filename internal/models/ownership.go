package models

import "time"

// OwnershipTxType classifies an entry in an asset's ownership history
type OwnershipTxType string

const (
	OwnershipRegistration OwnershipTxType = "REGISTRATION"
	OwnershipTransfer     OwnershipTxType = "TRANSFER"
	OwnershipVerification OwnershipTxType = "VERIFICATION"
)

// Registration records the current owner of an asset
type Registration struct {
	Asset        string    `json:"asset"`
	Owner        string    `json:"owner"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnershipTransaction is one immutable entry of an asset's history.
// Transfers produced by a settlement carry the settlement's transaction hash as ID.
type OwnershipTransaction struct {
	ID        string          `json:"id"`
	Type      OwnershipTxType `json:"type"`
	Asset     string          `json:"asset"`
	From      string          `json:"from"`
	To        string          `json:"to,omitempty"`
	Amount    uint64          `json:"amount,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// VerificationRecord is the latest ownership check made against an asset
type VerificationRecord struct {
	Asset      string    `json:"asset"`
	Owner      string    `json:"owner"`
	VerifiedBy string    `json:"verified_by"`
	IsOwner    bool      `json:"is_owner"`
	VerifiedAt time.Time `json:"verified_at"`
}
