package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrMerchantNotFound    = errors.New("merchant not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAliasNotFound       = errors.New("alias not found")
	ErrNoConversionPath    = errors.New("no conversion path")

	ErrUnsupportedCashbackPolicy = errors.New("unsupported cashback policy")
	ErrInvalidSplitMode          = errors.New("invalid split payment mode")

	ErrCardFrozen          = errors.New("the card is frozen")
	ErrNotSavingsAccount   = errors.New("this is not a savings account")
	ErrInsufficientSavings = errors.New("insufficient savings balance")
	ErrBalanceNotZero      = errors.New("account couldn't be deleted - balance is not zero")
	ErrInvalidPlanChange   = errors.New("invalid plan change")
	ErrAliasAlreadyExists  = errors.New("alias already exists")
)
