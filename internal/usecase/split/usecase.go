package split

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	splitdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/split"
)

// VoteResult tells the caller what a vote did to the request.
type VoteResult string

const (
	VotePending   VoteResult = "PENDING"
	VoteSettled   VoteResult = "SETTLED"
	VoteCancelled VoteResult = "CANCELLED"
	VoteNoop      VoteResult = "NOOP"
)

type Coordinator interface {
	Create(input *splitdto.CreateSplitInput) (*domain.SplitRequest, error)
	Vote(email string, accepted bool) (VoteResult, error)
}

// DefaultCoordinator owns the split request lifecycle:
// Created -> Pending -> {Settled, Cancelled}. A request is live from
// creation until every participant voted; it leaves the live set
// exactly once.
type DefaultCoordinator struct {
	accountRepo domain.AccountRepository
	splitRepo   domain.SplitRepository
	ledger      domain.LedgerRepository
	graph       *rates.Graph

	// Correlation IDs are assigned monotonically at creation and
	// stamped on every ledger entry of the request, so settlement
	// never depends on timestamp uniqueness.
	nextID uint64
}

func NewDefaultCoordinator(
	accountRepo domain.AccountRepository,
	splitRepo domain.SplitRepository,
	ledger domain.LedgerRepository,
	graph *rates.Graph,
) *DefaultCoordinator {
	return &DefaultCoordinator{
		accountRepo: accountRepo,
		splitRepo:   splitRepo,
		ledger:      ledger,
		graph:       graph,
	}
}
