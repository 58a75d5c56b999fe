package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

type UserInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Birthdate  string `json:"birthDate"`
	Occupation string `json:"occupation"`
}

type ExchangeInput struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

type MerchantInput struct {
	Name     string `json:"commerciant"`
	ID       int    `json:"id"`
	Account  string `json:"account"`
	Category string `json:"type"`
	Policy   string `json:"cashbackStrategy"`
}

// CommandInput is the superset of every command's fields. Which fields
// are read depends on the command name; unused fields stay zero.
type CommandInput struct {
	Command          string    `json:"command"`
	Email            string    `json:"email,omitempty"`
	Account          string    `json:"account,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	Amount           float64   `json:"amount,omitempty"`
	Description      string    `json:"description,omitempty"`
	CardNumber       string    `json:"cardNumber,omitempty"`
	Merchant         string    `json:"commerciant,omitempty"`
	Receiver         string    `json:"receiver,omitempty"`
	Alias            string    `json:"alias,omitempty"`
	Accounts         []string  `json:"accounts,omitempty"`
	InterestRate     float64   `json:"interestRate,omitempty"`
	AccountType      string    `json:"accountType,omitempty"`
	NewPlanType      string    `json:"newPlanType,omitempty"`
	SplitPaymentType string    `json:"splitPaymentType,omitempty"`
	AmountForUsers   []float64 `json:"amountForUsers,omitempty"`
	Timestamp        int       `json:"timestamp"`
	StartTimestamp   int       `json:"startTimestamp,omitempty"`
	EndTimestamp     int       `json:"endTimestamp,omitempty"`
}

// ObjectInput is one complete replay: the world to seed and the
// command stream to run against it.
type ObjectInput struct {
	Users         []UserInput     `json:"users"`
	ExchangeRates []ExchangeInput `json:"exchangeRates"`
	Merchants     []MerchantInput `json:"commerciants"`
	Commands      []CommandInput  `json:"commands"`
}

func LoadInput(path string) (*ObjectInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay input: %w", err)
	}

	var input ObjectInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("decode replay input: %w", err)
	}
	return &input, nil
}
