package auction

import "domain-market/internal/models"

// DetermineWinner picks the highest bid on asset. Equal amounts go to the
// earliest timestamp, then to whichever bid appears first in bids.
func DetermineWinner(bids []models.Bid, asset string) (models.Bid, bool) {
	var (
		winner models.Bid
		found  bool
	)
	for _, b := range bids {
		if b.AuctionID != asset {
			continue
		}
		if !found ||
			b.Amount > winner.Amount ||
			(b.Amount == winner.Amount && b.Timestamp.Before(winner.Timestamp)) {
			winner = b
			found = true
		}
	}
	return winner, found
}
