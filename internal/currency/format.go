package currency

import (
	"fintrack/internal/domain"
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Formatter struct {
	printer *message.Printer
}

// Format renders amount in code. Fiat amounts get locale grouping and two fraction
// digits; crypto amounts get their glyph and a fixed per-asset precision.
// NaN and infinities are rendered as zero.
func (f *Formatter) Format(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	info, ok := domain.LookupCurrency(code)
	if !ok {
		return decimal.NewFromFloat(amount).StringFixed(2) + " " + code
	}

	if info.Crypto {
		return info.Symbol + decimal.NewFromFloat(amount).StringFixed(int32(info.Digits))
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	return sign + info.Symbol + f.printer.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatWithOriginal appends the pre-conversion amount, e.g. "€85.00 ($100.00)",
// when the original currency differs from the display currency.
func (f *Formatter) FormatWithOriginal(amount float64, code string, originalAmount float64, originalCode string) string {
	formatted := f.Format(amount, code)
	if originalCode == "" || originalCode == code {
		return formatted
	}
	if math.IsNaN(originalAmount) || math.IsInf(originalAmount, 0) {
		originalAmount = 0
	}

	orig := decimal.NewFromFloat(originalAmount).StringFixed(2)
	if info, ok := domain.LookupCurrency(originalCode); ok {
		orig = info.Symbol + orig
	} else {
		orig = orig + " " + originalCode
	}
	return formatted + " (" + orig + ")"
}

// NewFormatter builds a formatter for a BCP 47 locale such as "en-US".
// Unparseable locales fall back to American English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		logrus.WithError(err).Warnf("Unknown display locale %q, using en-US", locale)
		tag = language.AmericanEnglish
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}
