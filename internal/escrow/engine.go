// Package escrow implements the two-party escrow lifecycle and its settlement.
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package escrow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"domain-market/internal/marketerrors"
	"domain-market/internal/models"

	"github.com/google/uuid"
)

const maxIDAttempts = 5

// NewEscrowID returns a time-ordered identifier that stays unique within the
// same clock tick.
func NewEscrowID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return "escrow_" + id.String(), nil
}

// Engine owns escrow transactions and the settlement records derived from them
type Engine struct {
	clock        func() time.Time
	newID        func() (string, error)
	verifier     Verifier
	transactions map[string]*models.EscrowTransaction
	settlements  map[string]models.SettlementRecord
}

// NewEngine creates an empty Engine. A nil clock falls back to time.Now and a
// nil verifier to BasicVerifier.
func NewEngine(clock func() time.Time, verifier Verifier) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if verifier == nil {
		verifier = BasicVerifier{}
	}
	return &Engine{
		clock:        clock,
		newID:        NewEscrowID,
		verifier:     verifier,
		transactions: make(map[string]*models.EscrowTransaction),
		settlements:  make(map[string]models.SettlementRecord),
	}
}

func (e *Engine) now() time.Time {
	return e.clock().UTC()
}

// CreateEscrow opens a pending escrow and returns its id
func (e *Engine) CreateEscrow(asset, seller, buyer string, amount uint64) (string, error) {
	switch {
	case asset == "":
		return "", fmt.Errorf("escrow: %w - missing asset", marketerrors.ErrInvalidEscrow)
	case seller == "" || buyer == "":
		return "", fmt.Errorf("escrow: %w - missing seller or buyer", marketerrors.ErrInvalidEscrow)
	case seller == buyer:
		return "", fmt.Errorf("escrow: %w - seller and buyer are both %s", marketerrors.ErrInvalidEscrow, seller)
	case amount == 0:
		return "", fmt.Errorf("escrow: %w - amount must be positive", marketerrors.ErrInvalidEscrow)
	}

	id, err := e.uniqueID()
	if err != nil {
		return "", err
	}

	now := e.now()
	e.transactions[id] = &models.EscrowTransaction{
		ID:        id,
		Asset:     asset,
		Seller:    seller,
		Buyer:     buyer,
		Amount:    amount,
		Status:    models.EscrowPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (e *Engine) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := e.newID()
		if err != nil {
			return "", fmt.Errorf("escrow: generate id: %w", err)
		}
		if _, taken := e.transactions[id]; !taken && id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("escrow: %w - no free id after %d attempts", marketerrors.ErrDuplicateID, maxIDAttempts)
}

// FundEscrow marks a pending escrow as funded
func (e *Engine) FundEscrow(id string) error {
	return e.advance("fund", id, models.EscrowFunded)
}

// ReleaseEscrow releases a funded escrow
func (e *Engine) ReleaseEscrow(id string) error {
	return e.advance("release", id, models.EscrowReleased)
}

// CancelEscrow cancels an escrow that has not been funded yet
func (e *Engine) CancelEscrow(id string) error {
	return e.advance("cancel", id, models.EscrowCancelled)
}

// Settle completes a released escrow against an external proof and keeps
// the resulting record.
func (e *Engine) Settle(id, proof string) (models.SettlementRecord, error) {
	tx, err := e.lookup("settle", id)
	if err != nil {
		return models.SettlementRecord{}, err
	}
	if _, done := e.settlements[id]; done {
		return models.SettlementRecord{}, fmt.Errorf("escrow: %w - %s already settled", marketerrors.ErrInvalidState, id)
	}

	record, err := SettleTransaction(tx, proof, e.now())
	if err != nil {
		return models.SettlementRecord{}, err
	}
	e.settlements[id] = record
	return record, nil
}

// VerifySettlement checks record with the engine's verifier
func (e *Engine) VerifySettlement(ctx context.Context, record models.SettlementRecord) error {
	if err := e.verifier.Verify(ctx, record); err != nil {
		return fmt.Errorf("escrow: %w - %s: %w", marketerrors.ErrSettlementUnverified, record.EscrowID, err)
	}
	return nil
}

// Transaction returns a copy of the escrow with id
func (e *Engine) Transaction(id string) (models.EscrowTransaction, error) {
	tx, err := e.lookup("get", id)
	if err != nil {
		return models.EscrowTransaction{}, err
	}
	return *tx, nil
}

// Settlement returns the settlement record of a completed escrow
func (e *Engine) Settlement(id string) (models.SettlementRecord, error) {
	record, ok := e.settlements[id]
	if !ok {
		return models.SettlementRecord{}, fmt.Errorf("get settlement for escrow %s: %w", id, marketerrors.ErrNotFound)
	}
	return record, nil
}

// Transactions returns every escrow ordered by creation time
func (e *Engine) Transactions() []models.EscrowTransaction {
	out := make([]models.EscrowTransaction, 0, len(e.transactions))
	for _, tx := range e.transactions {
		out = append(out, *tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (e *Engine) advance(op, id string, next models.EscrowStatus) error {
	tx, err := e.lookup(op, id)
	if err != nil {
		return err
	}
	if err := transition(tx, next, e.now()); err != nil {
		return fmt.Errorf("%s escrow: %w", op, err)
	}
	return nil
}

func (e *Engine) lookup(op, id string) (*models.EscrowTransaction, error) {
	tx, ok := e.transactions[id]
	if !ok {
		return nil, fmt.Errorf("%s escrow %s: %w", op, id, marketerrors.ErrNotFound)
	}
	return tx, nil
}

func transition(tx *models.EscrowTransaction, next models.EscrowStatus, now time.Time) error {
	if !tx.Status.CanTransition(next) {
		return fmt.Errorf("%w - %s cannot move from %s to %s", marketerrors.ErrInvalidState, tx.ID, tx.Status, next)
	}
	tx.Status = next
	if now.After(tx.UpdatedAt) {
		tx.UpdatedAt = now
	}
	return nil
}
