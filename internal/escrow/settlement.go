package escrow

import (
	"fmt"
	"time"

	"domain-market/internal/marketerrors"
	"domain-market/internal/models"
)

// SettleTransaction completes a released escrow and returns its settlement
// record. tx is left untouched on error.
func SettleTransaction(tx *models.EscrowTransaction, proof string, now time.Time) (models.SettlementRecord, error) {
	if tx.Status != models.EscrowReleased {
		return models.SettlementRecord{}, fmt.Errorf("settle escrow: %w - %s is %s, must be released", marketerrors.ErrInvalidState, tx.ID, tx.Status)
	}
	if proof == "" {
		return models.SettlementRecord{}, fmt.Errorf("settle escrow: %w - missing transaction hash", marketerrors.ErrInvalidProof)
	}

	now = now.UTC()
	if err := transition(tx, models.EscrowCompleted, now); err != nil {
		return models.SettlementRecord{}, fmt.Errorf("settle escrow: %w", err)
	}

	return models.SettlementRecord{
		EscrowID:        tx.ID,
		Asset:           tx.Asset,
		Seller:          tx.Seller,
		Buyer:           tx.Buyer,
		Amount:          tx.Amount,
		SettledAt:       now,
		TransactionHash: proof,
	}, nil
}
