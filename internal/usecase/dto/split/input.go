package splitdto

import (
	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

type CreateSplitInput struct {
	ParticipantIBANs []string
	TotalAmount      float64
	Currency         string
	Mode             domain.SplitMode
	// Shares is read for custom mode only and is deliberately not
	// checked against TotalAmount.
	Shares    []float64
	Timestamp int
}
