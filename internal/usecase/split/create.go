package split

import (
	"fmt"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	splitdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/split"
)

// Create validates the participants, registers the live request and
// writes one PENDING ledger entry per participant. It never debits a
// balance: the vote protocol commits funds through holds. A short
// participant does not block creation - the shortfall is recorded on
// every entry and the vote round still runs so participants can see it.
func (c *DefaultCoordinator) Create(input *splitdto.CreateSplitInput) (*domain.SplitRequest, error) {
	if input.Mode != domain.SplitEqual && input.Mode != domain.SplitCustom {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSplitMode, input.Mode)
	}

	// Resolve everything before touching shared state, so a lookup or
	// conversion failure cannot leave a half-created request behind.
	participants := make([]*domain.Account, 0, len(input.ParticipantIBANs))
	for _, iban := range input.ParticipantIBANs {
		account, err := c.accountRepo.GetAccountByIBAN(iban)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, iban)
		}
		participants = append(participants, account)
	}

	shares := make([]float64, len(participants))
	switch input.Mode {
	case domain.SplitEqual:
		// Plain division, no remainder redistribution.
		each := input.TotalAmount / float64(len(participants))
		for i := range shares {
			shares[i] = each
		}
	case domain.SplitCustom:
		// Caller-supplied shares, sum intentionally unvalidated.
		copy(shares, input.Shares)
	}

	shortIBAN, err := c.findShortParticipant(participants, shares, input.Currency, input.Mode)
	if err != nil {
		return nil, err
	}

	c.nextID++
	request := &domain.SplitRequest{
		ID:           c.nextID,
		Participants: participants,
		TotalAmount:  input.TotalAmount,
		Currency:     input.Currency,
		Timestamp:    input.Timestamp,
		Mode:         input.Mode,
		Shares:       shares,
		Votes:        make([]domain.Vote, len(participants)),
	}
	if err := c.splitRepo.Add(request); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Split payment of %.2f %s", input.TotalAmount, input.Currency)
	for i, account := range participants {
		entry := &domain.Transaction{
			SplitID:          request.ID,
			Email:            account.OwnerEmail,
			To:               account.IBAN,
			Amount:           shares[i],
			TotalAmount:      input.TotalAmount,
			Currency:         input.Currency,
			Timestamp:        input.Timestamp,
			Description:      description,
			Type:             domain.TxSplit,
			Status:           domain.TxPending,
			InvolvedAccounts: input.ParticipantIBANs,
			ShareAmounts:     shares,
			SplitKind:        string(input.Mode),
		}
		if shortIBAN != "" {
			entry.Error = fmt.Sprintf("Account %s has insufficient funds for a split payment.", shortIBAN)
		}
		if err := c.ledger.Append(entry); err != nil {
			return nil, err
		}
	}
	return request, nil
}

// findShortParticipant reports a participant whose available balance
// cannot cover its converted share, or "" when everyone can pay. Custom
// splits annotate the first short participant, equal splits the last.
// Insufficiency here is data for the ledger, never an error.
func (c *DefaultCoordinator) findShortParticipant(participants []*domain.Account, shares []float64, currency string, mode domain.SplitMode) (string, error) {
	shortIBAN := ""
	for i, account := range participants {
		converted, err := c.graph.Convert(shares[i], currency, account.Currency)
		if err != nil {
			return "", err
		}
		if account.Available() < converted {
			shortIBAN = account.IBAN
			if mode == domain.SplitCustom {
				break
			}
		}
	}
	return shortIBAN, nil
}
