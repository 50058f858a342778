package market

import (
	"context"
	"fmt"
	"sync"
	"time"

	"domain-market/internal/auction"
	"domain-market/internal/escrow"
	"domain-market/internal/marketerrors"
	"domain-market/internal/models"
	"domain-market/internal/registry"
	"domain-market/utils"

	"github.com/samber/lo"
)

// Options tunes how the service connects the two engines
type Options struct {
	// AutoEscrow opens an escrow for the winner as soon as an auction settles
	AutoEscrow bool
	// EnforceOwnership requires sellers to own the asset they auction or
	// escrow, and moves ownership in the registry when an escrow settles
	EnforceOwnership bool
	// Registry holds asset ownership. A private one is created when nil.
	Registry *registry.Registry
}

// AuctionOutcome is the result of settling an auction
type AuctionOutcome struct {
	Auction  models.Auction `json:"auction"`
	Winner   models.Bid     `json:"winner"`
	EscrowID string         `json:"escrow_id,omitempty"`
}

// MarketService serialises access to the auction and escrow engines and
// hands auction winners over to escrow.
//
// Locks are taken in the order auctionMu, escrowMu, registry. Most
// operations hold only one engine lock.
type MarketService struct {
	auctionMu sync.Mutex
	auctions  *auction.Engine

	escrowMu sync.Mutex
	escrows  *escrow.Engine

	assets *registry.Registry
	opts   Options
}

// NewMarketService creates a new MarketService instance
func NewMarketService(auctions *auction.Engine, escrows *escrow.Engine, opts Options) *MarketService {
	assets := opts.Registry
	if assets == nil {
		assets = registry.New(nil)
	}
	return &MarketService{
		auctions: auctions,
		escrows:  escrows,
		assets:   assets,
		opts:     opts,
	}
}

// checkSeller enforces ownership when it is switched on. Missing fields are
// left for the engines to report.
func (s *MarketService) checkSeller(asset, seller string) error {
	if !s.opts.EnforceOwnership || asset == "" || seller == "" {
		return nil
	}
	return s.assets.CheckOwner(asset, seller)
}

// CreateAuction registers a pending auction
func (s *MarketService) CreateAuction(asset, seller string, start, end time.Time, startingPrice uint64) (models.Auction, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()

	// malformed names are rejected by the engine with a precise error
	if models.ValidAssetName(asset) {
		if err := s.checkSeller(asset, seller); err != nil {
			return models.Auction{}, fmt.Errorf("service: failed to create auction for %s: %w", asset, err)
		}
	}
	a, err := s.auctions.CreateAuction(asset, seller, start, end, startingPrice)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for %s: %w", asset, err)
	}
	return a, nil
}

// ActivateAuction opens an auction for bidding
func (s *MarketService) ActivateAuction(asset string) (models.Auction, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()

	if err := s.auctions.ActivateAuction(asset); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to activate auction %s: %w", asset, err)
	}
	return s.auctions.Auction(asset)
}

// CancelAuction withdraws a pending auction
func (s *MarketService) CancelAuction(asset string) (models.Auction, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()

	if err := s.auctions.CancelAuction(asset); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to cancel auction %s: %w", asset, err)
	}
	return s.auctions.Auction(asset)
}

// PlaceBid records a bid on an active auction
func (s *MarketService) PlaceBid(asset, bidder string, amount uint64) (models.Bid, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()

	bid, err := s.auctions.PlaceBid(asset, bidder, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on %s by %s: %w", asset, bidder, err)
	}
	return bid, nil
}

// SettleAuction closes an ended auction. With AutoEscrow the winner becomes
// the buyer of a fresh escrow; if that fails the auction stays settled and
// the error is returned alongside the outcome.
func (s *MarketService) SettleAuction(ctx context.Context, asset string) (AuctionOutcome, error) {
	if err := ctx.Err(); err != nil {
		return AuctionOutcome{}, fmt.Errorf("service: settle auction %s: %w", asset, err)
	}

	s.auctionMu.Lock()
	winner, err := s.auctions.SettleAuction(asset)
	var settled models.Auction
	if err == nil {
		settled, err = s.auctions.Auction(asset)
	}
	if err != nil {
		s.auctionMu.Unlock()
		return AuctionOutcome{}, fmt.Errorf("service: failed to settle auction %s: %w", asset, err)
	}

	outcome := AuctionOutcome{Auction: settled, Winner: winner}
	utils.Info("auction settled", map[string]any{
		"asset":  asset,
		"winner": winner.Bidder,
		"amount": winner.Amount,
	})

	if !s.opts.AutoEscrow {
		s.auctionMu.Unlock()
		return outcome, nil
	}

	// escrowMu is taken before auctionMu is released so the asset cannot
	// change hands between the two steps
	s.escrowMu.Lock()
	s.auctionMu.Unlock()
	id, err := s.escrows.CreateEscrow(asset, settled.Seller, winner.Bidder, winner.Amount)
	s.escrowMu.Unlock()
	if err != nil {
		utils.Error("auction settled but escrow creation failed", map[string]any{
			"asset": asset,
			"error": err.Error(),
		})
		return outcome, fmt.Errorf("service: failed to open escrow for auction %s: %w", asset, err)
	}

	outcome.EscrowID = id
	utils.Info("escrow opened for auction winner", map[string]any{
		"asset":     asset,
		"escrow_id": id,
		"buyer":     winner.Bidder,
	})
	return outcome, nil
}

// GetAuction returns a single auction
func (s *MarketService) GetAuction(asset string) (models.Auction, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()

	a, err := s.auctions.Auction(asset)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", asset, err)
	}
	return a, nil
}

// GetBids returns the accepted bids of an auction in acceptance order
func (s *MarketService) GetBids(asset string) ([]models.Bid, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()

	bids, err := s.auctions.Bids(asset)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for %s: %w", asset, err)
	}
	return bids, nil
}

// ListAuctions returns all auctions, or only those in status when it is set
func (s *MarketService) ListAuctions(status models.AuctionStatus) []models.Auction {
	s.auctionMu.Lock()
	all := s.auctions.Auctions()
	s.auctionMu.Unlock()

	if status == "" {
		return all
	}
	return lo.Filter(all, func(a models.Auction, _ int) bool {
		return a.Status == status
	})
}

// CreateEscrow opens an escrow between two parties
func (s *MarketService) CreateEscrow(asset, seller, buyer string, amount uint64) (models.EscrowTransaction, error) {
	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	if err := s.checkSeller(asset, seller); err != nil {
		return models.EscrowTransaction{}, fmt.Errorf("service: failed to create escrow for %s: %w", asset, err)
	}
	id, err := s.escrows.CreateEscrow(asset, seller, buyer, amount)
	if err != nil {
		return models.EscrowTransaction{}, fmt.Errorf("service: failed to create escrow for %s: %w", asset, err)
	}
	return s.escrows.Transaction(id)
}

// FundEscrow marks an escrow funded
func (s *MarketService) FundEscrow(id string) (models.EscrowTransaction, error) {
	return s.advanceEscrow("fund", id, s.escrows.FundEscrow)
}

// ReleaseEscrow releases a funded escrow
func (s *MarketService) ReleaseEscrow(id string) (models.EscrowTransaction, error) {
	return s.advanceEscrow("release", id, s.escrows.ReleaseEscrow)
}

// CancelEscrow cancels an unfunded escrow
func (s *MarketService) CancelEscrow(id string) (models.EscrowTransaction, error) {
	return s.advanceEscrow("cancel", id, s.escrows.CancelEscrow)
}

func (s *MarketService) advanceEscrow(op, id string, step func(string) error) (models.EscrowTransaction, error) {
	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	if err := step(id); err != nil {
		return models.EscrowTransaction{}, fmt.Errorf("service: failed to %s escrow %s: %w", op, id, err)
	}
	return s.escrows.Transaction(id)
}

// SettleEscrow completes a released escrow against the external proof
func (s *MarketService) SettleEscrow(id, proof string) (models.SettlementRecord, error) {
	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	record, err := s.settle(id, proof)
	if err != nil {
		return models.SettlementRecord{}, fmt.Errorf("service: failed to settle escrow %s: %w", id, err)
	}
	utils.Info("escrow settled", map[string]any{
		"escrow_id":        id,
		"asset":            record.Asset,
		"transaction_hash": record.TransactionHash,
	})
	return record, nil
}

// settle completes the escrow, moving ownership in the same step when it is
// enforced. Caller holds escrowMu.
func (s *MarketService) settle(id, proof string) (models.SettlementRecord, error) {
	if !s.opts.EnforceOwnership {
		return s.escrows.Settle(id, proof)
	}

	tx, err := s.escrows.Transaction(id)
	if err != nil {
		return models.SettlementRecord{}, err
	}
	return s.assets.SettleTransfer(tx.Asset, tx.Seller, proof, func() (models.SettlementRecord, error) {
		return s.escrows.Settle(id, proof)
	})
}

// GetEscrow returns a single escrow transaction
func (s *MarketService) GetEscrow(id string) (models.EscrowTransaction, error) {
	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	tx, err := s.escrows.Transaction(id)
	if err != nil {
		return models.EscrowTransaction{}, fmt.Errorf("service: failed to get escrow %s: %w", id, err)
	}
	return tx, nil
}

// GetSettlement returns the settlement record of a completed escrow
func (s *MarketService) GetSettlement(id string) (models.SettlementRecord, error) {
	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	record, err := s.escrows.Settlement(id)
	if err != nil {
		return models.SettlementRecord{}, fmt.Errorf("service: failed to get settlement %s: %w", id, err)
	}
	return record, nil
}

// VerifySettlement checks the stored settlement of escrow id against its proof.
// The escrow lock is not held while the verifier runs.
func (s *MarketService) VerifySettlement(ctx context.Context, id string) (models.SettlementRecord, error) {
	record, err := s.GetSettlement(id)
	if err != nil {
		return models.SettlementRecord{}, err
	}
	if err := s.escrows.VerifySettlement(ctx, record); err != nil {
		return record, fmt.Errorf("service: %w", err)
	}
	return record, nil
}

// RegisterAsset records owner as the first owner of asset
func (s *MarketService) RegisterAsset(asset, owner string) (models.Registration, error) {
	reg, err := s.assets.Register(asset, owner)
	if err != nil {
		return models.Registration{}, fmt.Errorf("service: failed to register %s: %w", asset, err)
	}
	utils.Info("asset registered", map[string]any{"asset": asset, "owner": owner})
	return reg, nil
}

// GetAsset returns the current owner record of asset
func (s *MarketService) GetAsset(asset string) (models.Registration, error) {
	reg, err := s.assets.Registration(asset)
	if err != nil {
		return models.Registration{}, fmt.Errorf("service: failed to get asset %s: %w", asset, err)
	}
	return reg, nil
}

// TransferAsset hands asset to a new owner. Assets with a live auction or an
// unfinished escrow are locked.
func (s *MarketService) TransferAsset(asset, from, to string) (models.OwnershipTransaction, error) {
	s.auctionMu.Lock()
	defer s.auctionMu.Unlock()
	s.escrowMu.Lock()
	defer s.escrowMu.Unlock()

	if a, err := s.auctions.Auction(asset); err == nil && !a.Status.Terminal() {
		return models.OwnershipTransaction{}, fmt.Errorf("service: failed to transfer %s: %w - auction is %s", asset, marketerrors.ErrAssetLocked, a.Status)
	}
	openEscrow := lo.ContainsBy(s.escrows.Transactions(), func(tx models.EscrowTransaction) bool {
		return tx.Asset == asset && !tx.Status.Terminal()
	})
	if openEscrow {
		return models.OwnershipTransaction{}, fmt.Errorf("service: failed to transfer %s: %w - escrow in progress", asset, marketerrors.ErrAssetLocked)
	}

	tx, err := s.assets.Transfer(asset, from, to)
	if err != nil {
		return models.OwnershipTransaction{}, fmt.Errorf("service: failed to transfer %s: %w", asset, err)
	}
	utils.Info("asset transferred", map[string]any{"asset": asset, "from": from, "to": to})
	return tx, nil
}

// VerifyOwnership records and returns whether address owns asset
func (s *MarketService) VerifyOwnership(asset, address string) (models.VerificationRecord, error) {
	v, err := s.assets.VerifyOwnership(asset, address)
	if err != nil {
		return models.VerificationRecord{}, fmt.Errorf("service: failed to verify ownership of %s: %w", asset, err)
	}
	return v, nil
}

// AssetHistory returns the ownership history of asset, oldest first
func (s *MarketService) AssetHistory(asset string) ([]models.OwnershipTransaction, error) {
	history, err := s.assets.History(asset)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get history of %s: %w", asset, err)
	}
	return history, nil
}
