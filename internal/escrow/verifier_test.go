package escrow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"domain-market/internal/marketerrors"
	"domain-market/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func validRecord() models.SettlementRecord {
	return models.SettlementRecord{
		EscrowID:        "escrow_1",
		Asset:           "d1.ao",
		Seller:          "S",
		Buyer:           "B2",
		Amount:          200,
		SettledAt:       t0,
		TransactionHash: "hash1",
	}
}

// Test BasicVerifier
func TestBasicVerifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(r *models.SettlementRecord)
		maxLen    int
		wantError bool
	}{
		{name: "valid", mutate: func(*models.SettlementRecord) {}},
		{name: "arweave_style_hash", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "bNbA3TEQVL60xlgCcqdz4ZPHFZ711cZ3hmkpGttDt_U" }},
		{name: "missing_escrow_id", mutate: func(r *models.SettlementRecord) { r.EscrowID = "" }, wantError: true},
		{name: "missing_buyer", mutate: func(r *models.SettlementRecord) { r.Buyer = "" }, wantError: true},
		{name: "zero_amount", mutate: func(r *models.SettlementRecord) { r.Amount = 0 }, wantError: true},
		{name: "zero_settlement_time", mutate: func(r *models.SettlementRecord) { r.SettledAt = time.Time{} }, wantError: true},
		{name: "empty_hash", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "" }, wantError: true},
		{name: "hash_with_space", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "hash 1" }, wantError: true},
		{name: "hash_with_control_char", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "hash\x00" }, wantError: true},
		{name: "hash_non_ascii", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "hashé" }, wantError: true},
		{name: "hash_too_long_default", mutate: func(r *models.SettlementRecord) { r.TransactionHash = strings.Repeat("a", DefaultMaxProofLength+1) }, wantError: true},
		{name: "hash_within_custom_limit", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "abcd" }, maxLen: 4},
		{name: "hash_over_custom_limit", mutate: func(r *models.SettlementRecord) { r.TransactionHash = "abcde" }, maxLen: 4, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := validRecord()
			tc.mutate(&r)
			err := BasicVerifier{MaxProofLength: tc.maxLen}.Verify(context.Background(), r)
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Test LedgerVerifier
func TestLedgerVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ledger := NewMockLedger(ctrl)
	verifier := LedgerVerifier{Ledger: ledger}
	matching := LedgerEntry{Asset: "d1.ao", From: "S", To: "B2", Amount: 200}

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
		wantError     bool
	}{
		{
			name: "ledger_confirms",
			mockSetup: func() {
				ledger.EXPECT().LookupTransaction(ctx, "hash1").Return(matching, nil)
			},
		},
		{
			name: "amount_mismatch",
			mockSetup: func() {
				e := matching
				e.Amount = 199
				ledger.EXPECT().LookupTransaction(ctx, "hash1").Return(e, nil)
			},
			expectedError: errLedgerMismatch,
			wantError:     true,
		},
		{
			name: "buyer_mismatch",
			mockSetup: func() {
				e := matching
				e.To = "B1"
				ledger.EXPECT().LookupTransaction(ctx, "hash1").Return(e, nil)
			},
			expectedError: errLedgerMismatch,
			wantError:     true,
		},
		{
			name: "ledger_unreachable",
			mockSetup: func() {
				ledger.EXPECT().LookupTransaction(ctx, "hash1").Return(LedgerEntry{}, errors.New("connection refused"))
			},
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			err := verifier.Verify(ctx, validRecord())
			if !tc.wantError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			}
		})
	}
}

// Test ChainVerifier
func TestChainVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	first := NewMockVerifier(ctrl)
	second := NewMockVerifier(ctrl)
	record := validRecord()

	t.Run("all_pass", func(t *testing.T) {
		gomock.InOrder(
			first.EXPECT().Verify(ctx, record).Return(nil),
			second.EXPECT().Verify(ctx, record).Return(nil),
		)
		require.NoError(t, ChainVerifier{first, second}.Verify(ctx, record))
	})

	t.Run("stops_at_first_failure", func(t *testing.T) {
		boom := errors.New("boom")
		first.EXPECT().Verify(ctx, record).Return(boom)
		require.ErrorIs(t, ChainVerifier{first, second}.Verify(ctx, record), boom)
	})

	t.Run("empty_chain_passes", func(t *testing.T) {
		require.NoError(t, ChainVerifier{}.Verify(ctx, record))
	})
}

// Engine wraps verifier failures as ErrSettlementUnverified
func TestEngine_VerifySettlement_Pluggable(t *testing.T) {
	t.Parallel()

	reject := VerifierFunc(func(context.Context, models.SettlementRecord) error {
		return errors.New("unknown transaction")
	})
	engine := NewEngine(tickingClock(t0), reject)
	id := newEscrow(t, engine)
	require.NoError(t, engine.FundEscrow(id))
	require.NoError(t, engine.ReleaseEscrow(id))

	record, err := engine.Settle(id, "hash1")
	require.NoError(t, err)

	err = engine.VerifySettlement(context.Background(), record)
	require.ErrorIs(t, err, marketerrors.ErrSettlementUnverified)
	require.Contains(t, err.Error(), "unknown transaction")
}
