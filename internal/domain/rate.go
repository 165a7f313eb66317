package domain

import (
	"maps"
	"math"
	"time"
)

// RateTable maps a currency code to units of that currency per 1 BaseCurrency.
type RateTable map[string]float64

// Rate returns the rate for code; ok is false when the code is missing or unusable as a divisor.
func (t RateTable) Rate(code string) (float64, bool) {
	v, ok := t[code]
	if !ok || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (t RateTable) Clone() RateTable {
	return maps.Clone(t)
}

// RateSnapshot is what the rate cache hands out: a table, when it was captured and
// whether it is the compiled-in fallback rather than live data.
type RateSnapshot struct {
	Rates     RateTable
	FetchedAt time.Time
	Fallback  bool
}
