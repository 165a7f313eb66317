package rate

import (
	"context"
	"errors"
	"fintrack/internal/domain"
	"fintrack/internal/metrics"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// UnsupportedPolicy decides what happens when a code has no usable rate.
type UnsupportedPolicy string

const (
	// PolicyStrict returns domain.ErrUnsupportedCurrency alongside the unconverted amount.
	PolicyStrict UnsupportedPolicy = "strict"
	// PolicyPassthrough returns the unconverted amount without an error.
	PolicyPassthrough UnsupportedPolicy = "passthrough"
)

func ParseUnsupportedPolicy(s string) (UnsupportedPolicy, error) {
	switch UnsupportedPolicy(s) {
	case PolicyStrict, "":
		return PolicyStrict, nil
	case PolicyPassthrough:
		return PolicyPassthrough, nil
	}
	return "", fmt.Errorf("unknown unsupported currency policy %q", s)
}

type RateSource interface {
	GetRates(ctx context.Context) domain.RateSnapshot
}

// Conversion is the outcome of converting one amount. When Converted is false,
// Amount holds the caller's original amount.
type Conversion struct {
	Amount    float64
	From      string
	To        string
	Rate      float64
	Converted bool
	Fallback  bool
}

type BatchItem struct {
	Amount float64
	From   string
}

type Converter struct {
	rates   RateSource
	policy  UnsupportedPolicy
	metrics *metrics.Metrics
}

// Convert converts amount between two currencies through the base currency and
// rounds the result to cents. Identical codes short-circuit without rounding.
// On failure the original amount is returned together with the error.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (Conversion, error) {
	if from == to {
		c.metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeIdentity).Inc()
		return Conversion{Amount: amount, From: from, To: to, Rate: 1}, nil
	}
	return c.convertWith(c.rates.GetRates(ctx), amount, from, to)
}

// ConvertMany converts every amount against one rate snapshot.
func (c *Converter) ConvertMany(ctx context.Context, amounts []float64, from, to string) ([]float64, error) {
	out := make([]float64, len(amounts))
	if from == to {
		copy(out, amounts)
		return out, nil
	}

	snap := c.rates.GetRates(ctx)
	var err error
	for i, amount := range amounts {
		conv, convErr := c.convertWith(snap, amount, from, to)
		out[i] = conv.Amount
		if convErr != nil && err == nil {
			err = convErr
		}
	}
	return out, err
}

// ConvertBatch converts items with mixed source currencies against one rate snapshot.
// Failed items keep their original amount; their errors are joined.
func (c *Converter) ConvertBatch(ctx context.Context, items []BatchItem, to string) ([]Conversion, error) {
	out := make([]Conversion, len(items))
	var snap *domain.RateSnapshot
	var errs []error

	for i, item := range items {
		if item.From == to {
			out[i] = Conversion{Amount: item.Amount, From: item.From, To: to, Rate: 1}
			continue
		}
		if snap == nil {
			s := c.rates.GetRates(ctx)
			snap = &s
		}
		conv, err := c.convertWith(*snap, item.Amount, item.From, to)
		if err != nil {
			errs = append(errs, err)
		}
		out[i] = conv
	}
	return out, errors.Join(errs...)
}

// GetRate returns the unrounded multiplier from one currency to another.
// Identical codes give 1. On failure 1 is returned with the error.
func (c *Converter) GetRate(ctx context.Context, from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}
	snap := c.rates.GetRates(ctx)
	r, _, err := c.multiplier(snap, from, to)
	if err != nil {
		return 1, c.unsupported(err)
	}
	return r, nil
}

// Snapshot exposes the rates the converter is working with.
func (c *Converter) Snapshot(ctx context.Context) domain.RateSnapshot {
	return c.rates.GetRates(ctx)
}

func (c *Converter) convertWith(snap domain.RateSnapshot, amount float64, from, to string) (Conversion, error) {
	res := Conversion{Amount: amount, From: from, To: to}

	r, fallback, err := c.multiplier(snap, from, to)
	if err != nil {
		c.metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		logrus.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).Debug("conversion skipped")
		return res, c.unsupported(err)
	}

	usdAmount := amount
	if from != domain.BaseCurrency {
		usdAmount = amount / rateOf(snap, from)
	}
	converted := usdAmount
	if to != domain.BaseCurrency {
		converted = usdAmount * rateOf(snap, to)
	}

	rounded := roundCents(converted)
	if !isFinite(rounded) {
		err = fmt.Errorf("%w: %g %s to %s", domain.ErrNonFiniteAmount, amount, from, to)
		c.metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		logrus.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).Debug("conversion skipped")
		return res, err
	}

	res.Amount = rounded
	res.Rate = r
	res.Converted = true
	res.Fallback = snap.Fallback || fallback
	if res.Fallback {
		c.metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeFallback).Inc()
	} else {
		c.metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}
	return res, nil
}

// multiplier resolves both legs of the USD bridge. fallback reports whether a
// leg had to be taken from the static table because the snapshot lacked it.
func (c *Converter) multiplier(snap domain.RateSnapshot, from, to string) (float64, bool, error) {
	fromRate, fromFallback, ok := lookup(snap, from)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, from)
	}
	toRate, toFallback, ok := lookup(snap, to)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, to)
	}
	r := toRate / fromRate
	if !isFinite(r) {
		return 0, false, fmt.Errorf("%w: rate %s to %s", domain.ErrNonFiniteAmount, from, to)
	}
	return r, fromFallback || toFallback, nil
}

func (c *Converter) unsupported(err error) error {
	if c.policy == PolicyPassthrough && errors.Is(err, domain.ErrUnsupportedCurrency) {
		return nil
	}
	return err
}

func lookup(snap domain.RateSnapshot, code string) (float64, bool, bool) {
	if code == domain.BaseCurrency {
		return 1, false, true
	}
	if v, ok := snap.Rates.Rate(code); ok {
		return v, false, true
	}
	if v, ok := domain.FallbackRate(code); ok {
		return v, true, true
	}
	return 0, false, false
}

func rateOf(snap domain.RateSnapshot, code string) float64 {
	v, _, _ := lookup(snap, code)
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundCents rounds half up on the cent boundary.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func NewConverter(rates RateSource, policy UnsupportedPolicy, m *metrics.Metrics) *Converter {
	if policy == "" {
		policy = PolicyStrict
	}
	return &Converter{rates: rates, policy: policy, metrics: m}
}
