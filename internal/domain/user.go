package domain

type Plan string

const (
	PlanStandard Plan = "standard"
	PlanStudent  Plan = "student"
	PlanSilver   Plan = "silver"
	PlanGold     Plan = "gold"
)

// Rank orders plans for upgrade validation. Standard and student
// are the same tier and upgrade at the same price.
func (p Plan) Rank() int {
	switch p {
	case PlanStandard, PlanStudent:
		return 1
	case PlanSilver:
		return 2
	case PlanGold:
		return 3
	}
	return 0
}

type User struct {
	FirstName  string
	LastName   string
	Email      string
	Birthdate  string
	Occupation string
	Plan       Plan

	// Payments of at least 300 RON counted toward the automatic
	// silver -> gold upgrade.
	EligibleGoldPayments int
}
