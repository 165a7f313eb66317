package domain

import "errors"

var (
	ErrRateFetch           = errors.New("exchange rates fetch failed")
	ErrUnsupportedCurrency = errors.New("currency not supported")
	ErrNonFiniteAmount     = errors.New("amount is not a finite number")
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrSettingsNotFound    = errors.New("settings not found")
)
