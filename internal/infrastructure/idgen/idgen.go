package idgen

import (
	gonanoid "github.com/jaevor/go-nanoid"
)

const (
	ibanPrefix   = "RO"
	ibanBankCode = "SHVK"

	ibanCheckLen  = 2
	ibanSuffixLen = 16
	cardNumberLen = 16
)

// Generator produces IBANs and card numbers for accounts created during
// a run. Digits-only alphabets keep the output shaped like real payment
// identifiers.
type Generator struct {
	ibanCheck  func() string
	ibanSuffix func() string
	cardDigits func() string
}

func NewGenerator() (*Generator, error) {
	check, err := gonanoid.CustomASCII("0123456789", ibanCheckLen)
	if err != nil {
		return nil, err
	}
	suffix, err := gonanoid.CustomASCII("0123456789", ibanSuffixLen)
	if err != nil {
		return nil, err
	}
	card, err := gonanoid.CustomASCII("0123456789", cardNumberLen)
	if err != nil {
		return nil, err
	}
	return &Generator{ibanCheck: check, ibanSuffix: suffix, cardDigits: card}, nil
}

func (g *Generator) IBAN() string {
	return ibanPrefix + g.ibanCheck() + ibanBankCode + g.ibanSuffix()
}

func (g *Generator) CardNumber() string {
	return g.cardDigits()
}
