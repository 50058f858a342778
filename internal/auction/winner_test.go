package auction

import (
	"testing"
	"time"

	"domain-market/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Bid
func newBid(auctionID, bidder string, amount uint64, ts time.Time) models.Bid {
	return models.Bid{AuctionID: auctionID, Bidder: bidder, Amount: amount, Timestamp: ts}
}

func TestDetermineWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bids       []models.Bid
		asset      string
		wantBidder string
		wantFound  bool
	}{
		{
			name:      "no_bids",
			bids:      nil,
			asset:     "d1.ao",
			wantFound: false,
		},
		{
			name:      "bids_for_other_asset_only",
			bids:      []models.Bid{newBid("d2.ao", "B1", 500, t0)},
			asset:     "d1.ao",
			wantFound: false,
		},
		{
			name: "highest_amount_wins",
			bids: []models.Bid{
				newBid("d1.ao", "B1", 150, t0),
				newBid("d1.ao", "B2", 200, t0.Add(time.Minute)),
				newBid("d1.ao", "B3", 180, t0.Add(2*time.Minute)),
			},
			asset:      "d1.ao",
			wantBidder: "B2",
			wantFound:  true,
		},
		{
			name: "ignores_other_assets",
			bids: []models.Bid{
				newBid("d1.ao", "B1", 150, t0),
				newBid("d2.ao", "B9", 999, t0),
			},
			asset:      "d1.ao",
			wantBidder: "B1",
			wantFound:  true,
		},
		{
			name: "tie_goes_to_earliest_timestamp",
			bids: []models.Bid{
				newBid("d1.ao", "late", 200, t0.Add(time.Minute)),
				newBid("d1.ao", "early", 200, t0),
			},
			asset:      "d1.ao",
			wantBidder: "early",
			wantFound:  true,
		},
		{
			name: "tie_with_equal_timestamps_goes_to_first_recorded",
			bids: []models.Bid{
				newBid("d1.ao", "first", 200, t0),
				newBid("d1.ao", "second", 200, t0),
			},
			asset:      "d1.ao",
			wantBidder: "first",
			wantFound:  true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			winner, found := DetermineWinner(tc.bids, tc.asset)
			require.Equal(t, tc.wantFound, found)
			if found {
				require.Equal(t, tc.wantBidder, winner.Bidder)
			}
		})
	}
}

// Winner determination does not look at auction status
func TestDetermineWinner_IndependentOfStatus(t *testing.T) {
	t.Parallel()

	engine, _ := newActiveAuction(t)
	_, err := engine.PlaceBid("d1.ao", "B1", 150)
	require.NoError(t, err)

	bids, err := engine.Bids("d1.ao")
	require.NoError(t, err)

	winner, found := DetermineWinner(bids, "d1.ao")
	require.True(t, found)
	require.Equal(t, "B1", winner.Bidder)
}
