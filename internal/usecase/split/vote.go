package split

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// Vote records an accept or reject for the participant owned by email.
// The vote lands on the oldest live request where that participant has
// not voted yet; requests they already voted on are skipped, so a user
// queued on several splits resolves them in creation order. When every
// live request containing them is already voted the call is a no-op.
// Accepting places a hold for the converted share; rejecting cancels
// the whole request immediately.
func (c *DefaultCoordinator) Vote(email string, accepted bool) (VoteResult, error) {
	participating := false
	for _, request := range c.splitRepo.Live() {
		idx := request.IndexByOwner(email)
		if idx < 0 {
			continue
		}
		participating = true
		if request.HasVoted(idx) {
			continue
		}
		return c.applyVote(request, idx, accepted)
	}
	if !participating {
		return "", domain.ErrParticipantNotFound
	}
	return VoteNoop, nil
}

func (c *DefaultCoordinator) applyVote(request *domain.SplitRequest, idx int, accepted bool) (VoteResult, error) {
	if !accepted {
		request.Votes[idx] = domain.VoteRejected
		if err := c.cancel(request); err != nil {
			return "", err
		}
		return VoteCancelled, nil
	}

	request.Votes[idx] = domain.VoteAccepted
	if err := c.placeHold(request, idx); err != nil {
		return "", err
	}

	if request.AllAccepted() {
		if err := c.settle(request); err != nil {
			return "", err
		}
		return VoteSettled, nil
	}
	return VotePending, nil
}

// placeHold blocks the participant's converted share on their account.
// When the balance cannot cover the share the hold is silently
// skipped - deliberately not an error, the shortfall was already
// surfaced through the ledger at creation.
func (c *DefaultCoordinator) placeHold(request *domain.SplitRequest, idx int) error {
	account := request.Participants[idx]
	converted, err := c.graph.Convert(request.Shares[idx], request.Currency, account.Currency)
	if err != nil {
		return err
	}
	if account.Balance < converted {
		return nil
	}
	account.HoldAmount += converted
	return nil
}

// settle runs when the last outstanding accept lands. The holds placed
// during voting are the fund commitment; settlement only retires the
// request and flips its ledger entries so history reports see them.
func (c *DefaultCoordinator) settle(request *domain.SplitRequest) error {
	if err := c.splitRepo.Remove(request.ID); err != nil {
		return err
	}
	for _, entry := range c.ledger.BySplitID(request.ID) {
		entry.Status = domain.TxSettled
	}
	return nil
}

// cancel retires the request on the first rejection. The event stays
// auditable: every correlated entry settles with the rejection noted.
// Holds already placed by earlier acceptors are not released.
func (c *DefaultCoordinator) cancel(request *domain.SplitRequest) error {
	if err := c.splitRepo.Remove(request.ID); err != nil {
		return err
	}
	for _, entry := range c.ledger.BySplitID(request.ID) {
		entry.Status = domain.TxSettled
		entry.Error = "One user rejected the payment."
	}
	return nil
}
