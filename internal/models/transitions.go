package models

var auctionTransitions = map[AuctionStatus][]AuctionStatus{
	AuctionPending: {AuctionActive, AuctionCancelled},
	AuctionActive:  {AuctionCompleted},
}

var escrowTransitions = map[EscrowStatus][]EscrowStatus{
	EscrowPending:  {EscrowFunded, EscrowCancelled},
	EscrowFunded:   {EscrowReleased},
	EscrowReleased: {EscrowCompleted},
}

// CanTransition reports whether an auction may move from s to next
func (s AuctionStatus) CanTransition(next AuctionStatus) bool {
	for _, allowed := range auctionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible
func (s AuctionStatus) Terminal() bool {
	return len(auctionTransitions[s]) == 0
}

// CanTransition reports whether an escrow may move from s to next
func (s EscrowStatus) CanTransition(next EscrowStatus) bool {
	for _, allowed := range escrowTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible
func (s EscrowStatus) Terminal() bool {
	return len(escrowTransitions[s]) == 0
}
