package marketerrors

import (
	"errors"
	"fmt"
)

// Lookup errors
var (
	ErrNotFound = errors.New("not found")
)

// lifecycle errors
var (
	ErrInvalidState        = errors.New("invalid state")
	ErrAuctionNotActive    = fmt.Errorf("%w: auction not active", ErrInvalidState)
	ErrAuctionNotStarted   = fmt.Errorf("%w: auction window not started", ErrAuctionNotActive)
	ErrAuctionWindowClosed = fmt.Errorf("%w: auction window closed", ErrAuctionNotActive)
	ErrAuctionNotEnded     = fmt.Errorf("%w: auction has not ended", ErrInvalidState)
	ErrAssetLocked         = fmt.Errorf("%w: asset is under auction", ErrInvalidState)
)

// business logic errors
var (
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrNoWinner             = errors.New("no winner: auction has no bids")
	ErrDuplicateID          = errors.New("duplicate id")
	ErrDuplicateAuction     = fmt.Errorf("%w: asset already has a live auction", ErrDuplicateID)
	ErrAlreadyRegistered    = fmt.Errorf("%w: asset already registered", ErrDuplicateID)
	ErrNotOwner             = errors.New("not the owner of this asset")
	ErrSettlementUnverified = errors.New("settlement could not be verified")
)

// input validation errors
var (
	ErrInvalidAuction  = errors.New("invalid auction")
	ErrInvalidBid      = errors.New("invalid bid")
	ErrInvalidEscrow   = errors.New("invalid escrow")
	ErrInvalidProof    = errors.New("invalid settlement proof")
	ErrInvalidAsset    = errors.New("invalid asset registration")
	ErrInvalidTransfer = errors.New("invalid ownership transfer")
)
