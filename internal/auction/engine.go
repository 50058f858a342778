// Package auction implements the ascending-price auction lifecycle for named assets.
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package auction

import (
	"fmt"
	"sort"
	"time"

	"domain-market/internal/marketerrors"
	"domain-market/internal/models"
)

type entry struct {
	auction models.Auction
	bids    []models.Bid // acceptance order
}

// Engine owns a set of auctions and the bids placed on them
type Engine struct {
	clock    func() time.Time
	auctions map[string]*entry
}

// NewEngine creates an empty Engine. A nil clock falls back to time.Now.
func NewEngine(clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		clock:    clock,
		auctions: make(map[string]*entry),
	}
}

func (e *Engine) now() time.Time {
	return e.clock().UTC()
}

// CreateAuction registers a pending auction for asset.
// A terminal auction for the same asset is replaced together with its bids.
func (e *Engine) CreateAuction(asset, seller string, startTime, endTime time.Time, startingPrice uint64) (models.Auction, error) {
	if !models.ValidAssetName(asset) {
		return models.Auction{}, fmt.Errorf("auction: %w - malformed asset name %q", marketerrors.ErrInvalidAuction, asset)
	}
	if seller == "" {
		return models.Auction{}, fmt.Errorf("auction: %w - missing seller", marketerrors.ErrInvalidAuction)
	}
	if !endTime.After(startTime) {
		return models.Auction{}, fmt.Errorf("auction: %w - end time must be after start time", marketerrors.ErrInvalidAuction)
	}
	if existing, ok := e.auctions[asset]; ok && !existing.auction.Status.Terminal() {
		return models.Auction{}, fmt.Errorf("auction: %w - %s is %s", marketerrors.ErrDuplicateAuction, asset, existing.auction.Status)
	}

	a := models.Auction{
		Asset:         asset,
		Seller:        seller,
		StartTime:     startTime.UTC(),
		EndTime:       endTime.UTC(),
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Status:        models.AuctionPending,
	}
	e.auctions[asset] = &entry{auction: a}
	return a, nil
}

// ActivateAuction opens a pending auction for bidding
func (e *Engine) ActivateAuction(asset string) error {
	ent, err := e.lookup("activate", asset)
	if err != nil {
		return err
	}
	return transition(&ent.auction, models.AuctionActive)
}

// CancelAuction withdraws an auction that was never activated
func (e *Engine) CancelAuction(asset string) error {
	ent, err := e.lookup("cancel", asset)
	if err != nil {
		return err
	}
	return transition(&ent.auction, models.AuctionCancelled)
}

// PlaceBid records bidder's offer if the auction is active, inside its
// window, and amount beats the current price.
func (e *Engine) PlaceBid(asset, bidder string, amount uint64) (models.Bid, error) {
	ent, err := e.lookup("place bid on", asset)
	if err != nil {
		return models.Bid{}, err
	}
	a := &ent.auction

	if bidder == "" {
		return models.Bid{}, fmt.Errorf("auction: %w - missing bidder", marketerrors.ErrInvalidBid)
	}
	if bidder == a.Seller {
		return models.Bid{}, fmt.Errorf("auction: %w - seller cannot bid on %s", marketerrors.ErrInvalidBid, asset)
	}

	now := e.now()
	if err := checkBiddable(a, now); err != nil {
		return models.Bid{}, err
	}
	if amount <= a.CurrentPrice {
		return models.Bid{}, fmt.Errorf("auction: %w - current price is %d", marketerrors.ErrBidTooLow, a.CurrentPrice)
	}

	bid := models.Bid{
		AuctionID: asset,
		Bidder:    bidder,
		Amount:    amount,
		Timestamp: now,
	}
	a.CurrentPrice = amount
	a.HighestBidder = bidder
	a.BidCount++
	ent.bids = append(ent.bids, bid)
	return bid, nil
}

// SettleAuction closes an ended auction and returns the winning bid.
// The auction stays active when there is nothing to award.
func (e *Engine) SettleAuction(asset string) (models.Bid, error) {
	ent, err := e.lookup("settle", asset)
	if err != nil {
		return models.Bid{}, err
	}
	a := &ent.auction

	if a.Status != models.AuctionActive {
		return models.Bid{}, fmt.Errorf("auction: %w - %s is %s", marketerrors.ErrAuctionNotActive, asset, a.Status)
	}
	if e.now().Before(a.EndTime) {
		return models.Bid{}, fmt.Errorf("auction: %w - %s ends at %s", marketerrors.ErrAuctionNotEnded, asset, a.EndTime.Format(time.RFC3339))
	}

	winner, ok := DetermineWinner(ent.bids, asset)
	if !ok {
		return models.Bid{}, fmt.Errorf("auction: %w - %s", marketerrors.ErrNoWinner, asset)
	}
	if err := transition(a, models.AuctionCompleted); err != nil {
		return models.Bid{}, err
	}
	return winner, nil
}

// Auction returns a copy of the auction for asset
func (e *Engine) Auction(asset string) (models.Auction, error) {
	ent, err := e.lookup("get", asset)
	if err != nil {
		return models.Auction{}, err
	}
	return ent.auction, nil
}

// Bids returns the accepted bids for asset in acceptance order
func (e *Engine) Bids(asset string) ([]models.Bid, error) {
	ent, err := e.lookup("get bids for", asset)
	if err != nil {
		return nil, err
	}
	return append([]models.Bid(nil), ent.bids...), nil
}

// Auctions returns every auction ordered by asset name
func (e *Engine) Auctions() []models.Auction {
	out := make([]models.Auction, 0, len(e.auctions))
	for _, ent := range e.auctions {
		out = append(out, ent.auction)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

func (e *Engine) lookup(op, asset string) (*entry, error) {
	ent, ok := e.auctions[asset]
	if !ok {
		return nil, fmt.Errorf("%s auction %s: %w", op, asset, marketerrors.ErrNotFound)
	}
	return ent, nil
}

func transition(a *models.Auction, next models.AuctionStatus) error {
	if !a.Status.CanTransition(next) {
		return fmt.Errorf("auction: %w - %s cannot move from %s to %s", marketerrors.ErrInvalidState, a.Asset, a.Status, next)
	}
	a.Status = next
	return nil
}

// checkBiddable applies the status and window checks, both bounds inclusive
func checkBiddable(a *models.Auction, now time.Time) error {
	if a.Status != models.AuctionActive {
		return fmt.Errorf("auction: %w - %s is %s", marketerrors.ErrAuctionNotActive, a.Asset, a.Status)
	}
	if now.Before(a.StartTime) {
		return fmt.Errorf("auction: %w - %s opens at %s", marketerrors.ErrAuctionNotStarted, a.Asset, a.StartTime.Format(time.RFC3339))
	}
	if now.After(a.EndTime) {
		return fmt.Errorf("auction: %w - %s closed at %s", marketerrors.ErrAuctionWindowClosed, a.Asset, a.EndTime.Format(time.RFC3339))
	}
	return nil
}
