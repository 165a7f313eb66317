package rate

import (
	"errors"
	"maps"
	"slices"
)

var (
	ErrFromRequired    = errors.New("source currency is required")
	ErrToRequired      = errors.New("target currency is required")
	ErrFromUnsupported = errors.New("source currency not supported")
	ErrToUnsupported   = errors.New("target currency not supported")
)

type CurrencyValidator struct {
	supportedCodesSet map[string]struct{} // read only copy
	supportedCodesLst []string            // read only copy
}

// ValidateCodes checks a conversion pair. Identical codes are allowed: they convert to themselves.
func (v *CurrencyValidator) ValidateCodes(from, to string) error {
	if from == "" {
		return ErrFromRequired
	}
	if to == "" {
		return ErrToRequired
	}
	if !v.IsSupported(from) {
		return ErrFromUnsupported
	}
	if !v.IsSupported(to) {
		return ErrToUnsupported
	}
	return nil
}

func (v *CurrencyValidator) IsSupported(code string) bool {
	_, ok := v.supportedCodesSet[code]
	return ok
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supportedCurrencies map[string]struct{}) *CurrencyValidator {
	codesSet := maps.Clone(supportedCurrencies)
	codesLst := slices.Collect(maps.Keys(codesSet))
	slices.Sort(codesLst)

	return &CurrencyValidator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
