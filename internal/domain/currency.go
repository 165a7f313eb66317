package domain

import (
	"maps"
	"slices"
)

const BaseCurrency = "USD"

type CurrencyInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
	Crypto bool   `json:"crypto"`
	// Digits is the number of fraction digits used when displaying amounts.
	Digits int `json:"digits"`
}

var supportedCurrencies = map[string]CurrencyInfo{
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", Flag: "🇺🇸", Digits: 2},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Flag: "🇪🇺", Digits: 2},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£", Flag: "🇬🇧", Digits: 2},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Flag: "🇨🇦", Digits: 2},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹", Flag: "🇮🇳", Digits: 2},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Flag: "🇦🇺", Digits: 2},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Flag: "🇯🇵", Digits: 2},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Flag: "🇨🇳", Digits: 2},
	"BTC": {Code: "BTC", Name: "Bitcoin", Symbol: "₿", Flag: "₿", Crypto: true, Digits: 8},
	"ETH": {Code: "ETH", Name: "Ethereum", Symbol: "Ξ", Flag: "Ξ", Crypto: true, Digits: 6},
	"SOL": {Code: "SOL", Name: "Solana", Symbol: "◎", Flag: "◎", Crypto: true, Digits: 4},
}

// approximate rates used when the live table can't be fetched
var fallbackRates = RateTable{
	"USD": 1,
	"EUR": 0.85,
	"GBP": 0.73,
	"CAD": 1.25,
	"INR": 83.12,
	"AUD": 1.35,
	"JPY": 110.0,
	"CNY": 6.45,
	"BTC": 0.000023,
	"ETH": 0.00041,
	"SOL": 0.014,
}

func LookupCurrency(code string) (CurrencyInfo, bool) {
	info, ok := supportedCurrencies[code]
	return info, ok
}

// SupportedCodes returns supported currency codes sorted alphabetically.
func SupportedCodes() []string {
	codes := slices.Collect(maps.Keys(supportedCurrencies))
	slices.Sort(codes)
	return codes
}

// FallbackRates returns a copy of the static fallback table.
func FallbackRates() RateTable {
	return fallbackRates.Clone()
}

func FallbackRate(code string) (float64, bool) {
	return fallbackRates.Rate(code)
}
