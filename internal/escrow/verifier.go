package escrow

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"domain-market/internal/models"
)

// DefaultMaxProofLength bounds transaction hashes accepted by BasicVerifier
const DefaultMaxProofLength = 128

var (
	errIncompleteRecord = errors.New("incomplete settlement record")
	errMalformedProof   = errors.New("malformed transaction hash")
	errLedgerMismatch   = errors.New("ledger entry does not match settlement")
)

// Verifier validates a settlement record against its external proof
type Verifier interface {
	Verify(ctx context.Context, record models.SettlementRecord) error
}

// VerifierFunc adapts a function to Verifier
type VerifierFunc func(ctx context.Context, record models.SettlementRecord) error

func (f VerifierFunc) Verify(ctx context.Context, record models.SettlementRecord) error {
	return f(ctx, record)
}

// BasicVerifier checks that a record is complete and its proof well formed.
// It does not contact any ledger.
type BasicVerifier struct {
	MaxProofLength int
}

func (v BasicVerifier) Verify(_ context.Context, r models.SettlementRecord) error {
	switch {
	case r.EscrowID == "", r.Asset == "", r.Seller == "", r.Buyer == "":
		return fmt.Errorf("%w: missing identifiers", errIncompleteRecord)
	case r.Amount == 0:
		return fmt.Errorf("%w: zero amount", errIncompleteRecord)
	case r.SettledAt.IsZero():
		return fmt.Errorf("%w: missing settlement time", errIncompleteRecord)
	}

	limit := v.MaxProofLength
	if limit <= 0 {
		limit = DefaultMaxProofLength
	}
	if r.TransactionHash == "" || len(r.TransactionHash) > limit {
		return fmt.Errorf("%w: length %d", errMalformedProof, len(r.TransactionHash))
	}
	for _, c := range r.TransactionHash {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) || unicode.IsSpace(c) {
			return fmt.Errorf("%w: unexpected character %q", errMalformedProof, c)
		}
	}
	return nil
}

// LedgerEntry is the ledger's view of a settled transfer
type LedgerEntry struct {
	Asset  string
	From   string
	To     string
	Amount uint64
}

//go:generate mockgen -source=verifier.go -destination=mock_ledger.go -package=escrow

// Ledger looks up transfers recorded on an external ledger
type Ledger interface {
	LookupTransaction(ctx context.Context, hash string) (LedgerEntry, error)
}

// LedgerVerifier confirms a record by fetching its proof from a Ledger
type LedgerVerifier struct {
	Ledger Ledger
}

func (v LedgerVerifier) Verify(ctx context.Context, r models.SettlementRecord) error {
	entry, err := v.Ledger.LookupTransaction(ctx, r.TransactionHash)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", r.TransactionHash, err)
	}
	if entry.Asset != r.Asset || entry.From != r.Seller || entry.To != r.Buyer || entry.Amount != r.Amount {
		return fmt.Errorf("%w: %s", errLedgerMismatch, r.TransactionHash)
	}
	return nil
}

// ChainVerifier runs verifiers in order and stops at the first failure
type ChainVerifier []Verifier

func (c ChainVerifier) Verify(ctx context.Context, r models.SettlementRecord) error {
	for _, v := range c {
		if err := v.Verify(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
