// Package currency holds the static currency metadata and display formatting.
package currency

import (
	"fintrack/internal/domain"
)

// GetCurrencyInfo looks up display metadata; ok is false for unknown codes.
func GetCurrencyInfo(code string) (domain.CurrencyInfo, bool) {
	return domain.LookupCurrency(code)
}

// List returns metadata for every supported currency ordered by code.
func List() []domain.CurrencyInfo {
	codes := domain.SupportedCodes()
	infos := make([]domain.CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		info, _ := domain.LookupCurrency(code)
		infos = append(infos, info)
	}
	return infos
}

// Symbol returns the display symbol, or the code itself when unknown.
func Symbol(code string) string {
	if info, ok := domain.LookupCurrency(code); ok {
		return info.Symbol
	}
	return code
}

func NeedsConversion(userCurrency, dataCurrency string) bool {
	return userCurrency != dataCurrency
}

// SupportedSet returns the supported codes as a set, ready for rate.NewValidator.
func SupportedSet() map[string]struct{} {
	codes := domain.SupportedCodes()
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}
