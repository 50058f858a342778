// Package registry tracks which address owns each asset and keeps the
// ownership history that settlements are verified against.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"domain-market/internal/escrow"
	"domain-market/internal/marketerrors"
	"domain-market/internal/models"

	"github.com/google/uuid"
)

// NewTransactionID returns an identifier for history entries that are not
// backed by a settlement hash
func NewTransactionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return "tx_" + id.String(), nil
}

// Registry is a concurrency-safe in-memory ownership ledger
type Registry struct {
	mu            sync.RWMutex
	clock         func() time.Time
	newID         func() (string, error)
	owners        map[string]*models.Registration        // key: asset
	transactions  map[string]models.OwnershipTransaction // key: transaction id
	history       map[string][]string                    // key: asset -> transaction ids in order
	verifications map[string]models.VerificationRecord   // key: asset -> latest check
}

// New creates an empty Registry. A nil clock falls back to time.Now.
func New(clock func() time.Time) *Registry {
	if clock == nil {
		clock = time.Now
	}
	return &Registry{
		clock:         clock,
		newID:         NewTransactionID,
		owners:        make(map[string]*models.Registration),
		transactions:  make(map[string]models.OwnershipTransaction),
		history:       make(map[string][]string),
		verifications: make(map[string]models.VerificationRecord),
	}
}

func (r *Registry) now() time.Time {
	return r.clock().UTC()
}

// Register records owner as the first owner of asset
func (r *Registry) Register(asset, owner string) (models.Registration, error) {
	if !models.ValidAssetName(asset) {
		return models.Registration{}, fmt.Errorf("registry: %w - malformed asset name %q", marketerrors.ErrInvalidAsset, asset)
	}
	if owner == "" {
		return models.Registration{}, fmt.Errorf("registry: %w - missing owner", marketerrors.ErrInvalidAsset)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.owners[asset]; ok {
		return models.Registration{}, fmt.Errorf("registry: %w - %s is owned by %s", marketerrors.ErrAlreadyRegistered, asset, existing.Owner)
	}

	id, err := r.newID()
	if err != nil {
		return models.Registration{}, fmt.Errorf("registry: generate id: %w", err)
	}

	now := r.now()
	reg := &models.Registration{Asset: asset, Owner: owner, RegisteredAt: now, UpdatedAt: now}
	r.owners[asset] = reg
	r.record(models.OwnershipTransaction{
		ID:        id,
		Type:      models.OwnershipRegistration,
		Asset:     asset,
		From:      owner,
		Timestamp: now,
	})
	return *reg, nil
}

// Registration returns the current owner record of asset
func (r *Registry) Registration(asset string) (models.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.owners[asset]
	if !ok {
		return models.Registration{}, fmt.Errorf("registry: %w - asset %s is not registered", marketerrors.ErrNotFound, asset)
	}
	return *reg, nil
}

// CheckOwner fails with ErrNotOwner unless address owns asset.
// An unregistered asset has no owner.
func (r *Registry) CheckOwner(asset, address string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.checkOwner(asset, address)
}

func (r *Registry) checkOwner(asset, address string) error {
	reg, ok := r.owners[asset]
	if !ok {
		return fmt.Errorf("registry: %w - %s is not registered", marketerrors.ErrNotOwner, asset)
	}
	if reg.Owner != address {
		return fmt.Errorf("registry: %w - %s does not own %s", marketerrors.ErrNotOwner, address, asset)
	}
	return nil
}

// VerifyOwnership records that address checked who owns asset. The check is
// stored whether or not address is the owner.
func (r *Registry) VerifyOwnership(asset, address string) (models.VerificationRecord, error) {
	if address == "" {
		return models.VerificationRecord{}, fmt.Errorf("registry: %w - missing address", marketerrors.ErrInvalidAsset)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.owners[asset]
	if !ok {
		return models.VerificationRecord{}, fmt.Errorf("registry: %w - asset %s is not registered", marketerrors.ErrNotFound, asset)
	}

	id, err := r.newID()
	if err != nil {
		return models.VerificationRecord{}, fmt.Errorf("registry: generate id: %w", err)
	}

	now := r.now()
	v := models.VerificationRecord{
		Asset:      asset,
		Owner:      reg.Owner,
		VerifiedBy: address,
		IsOwner:    reg.Owner == address,
		VerifiedAt: now,
	}
	r.verifications[asset] = v
	r.record(models.OwnershipTransaction{
		ID:        id,
		Type:      models.OwnershipVerification,
		Asset:     asset,
		From:      address,
		Timestamp: now,
	})
	return v, nil
}

// LastVerification returns the most recent ownership check of asset
func (r *Registry) LastVerification(asset string) (models.VerificationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.verifications[asset]
	if !ok {
		return models.VerificationRecord{}, fmt.Errorf("registry: %w - %s was never verified", marketerrors.ErrNotFound, asset)
	}
	return v, nil
}

// Transfer hands asset from its owner to a new owner outside any sale
func (r *Registry) Transfer(asset, from, to string) (models.OwnershipTransaction, error) {
	if to == "" || to == from {
		return models.OwnershipTransaction{}, fmt.Errorf("registry: %w - new owner must differ from %q", marketerrors.ErrInvalidTransfer, from)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkOwner(asset, from); err != nil {
		return models.OwnershipTransaction{}, err
	}
	id, err := r.newID()
	if err != nil {
		return models.OwnershipTransaction{}, fmt.Errorf("registry: generate id: %w", err)
	}
	return r.transfer(id, asset, from, to, 0), nil
}

// SettleTransfer moves asset from seller to the settlement's buyer. settle runs
// under the registry lock once seller's ownership and the hash's freshness are
// checked; nothing is recorded when it fails. The returned record's
// transaction hash becomes the id of the TRANSFER entry.
func (r *Registry) SettleTransfer(asset, seller, hash string, settle func() (models.SettlementRecord, error)) (models.SettlementRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, used := r.transactions[hash]; used && hash != "" {
		return models.SettlementRecord{}, fmt.Errorf("registry: %w - transaction %s already recorded", marketerrors.ErrDuplicateID, hash)
	}
	if err := r.checkOwner(asset, seller); err != nil {
		return models.SettlementRecord{}, err
	}

	record, err := settle()
	if err != nil {
		return models.SettlementRecord{}, err
	}
	r.transfer(record.TransactionHash, record.Asset, record.Seller, record.Buyer, record.Amount)
	return record, nil
}

func (r *Registry) transfer(id, asset, from, to string, amount uint64) models.OwnershipTransaction {
	now := r.now()
	reg := r.owners[asset]
	reg.Owner = to
	if now.After(reg.UpdatedAt) {
		reg.UpdatedAt = now
	}

	tx := models.OwnershipTransaction{
		ID:        id,
		Type:      models.OwnershipTransfer,
		Asset:     asset,
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: now,
	}
	r.record(tx)
	return tx
}

func (r *Registry) record(tx models.OwnershipTransaction) {
	r.transactions[tx.ID] = tx
	r.history[tx.Asset] = append(r.history[tx.Asset], tx.ID)
}

// History returns every entry recorded for asset, oldest first
func (r *Registry) History(asset string) ([]models.OwnershipTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.history[asset]
	if !ok {
		return nil, fmt.Errorf("registry: %w - asset %s is not registered", marketerrors.ErrNotFound, asset)
	}
	out := make([]models.OwnershipTransaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.transactions[id])
	}
	return out, nil
}

// LookupTransaction returns the transfer recorded under hash. Only TRANSFER
// entries are visible; it makes Registry usable as an escrow.Ledger.
func (r *Registry) LookupTransaction(ctx context.Context, hash string) (escrow.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return escrow.LedgerEntry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.transactions[hash]
	if !ok || tx.Type != models.OwnershipTransfer {
		return escrow.LedgerEntry{}, fmt.Errorf("registry: %w - no transfer %s", marketerrors.ErrNotFound, hash)
	}
	return escrow.LedgerEntry{
		Asset:  tx.Asset,
		From:   tx.From,
		To:     tx.To,
		Amount: tx.Amount,
	}, nil
}
