package dashboard

import (
	"fmt"
	"log"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is an ISO-4217 currency code. USD and HKD are the built-in
// currencies, but any code round-trips through the data files.
type Currency string

const (
	USD Currency = "USD"
	HKD Currency = "HKD"
)

// Currencies lists the built-in currencies, in display order.
func Currencies() []Currency { return []Currency{USD, HKD} }

// Rate is a known exchange rate between two currencies.
type Rate struct {
	From      Currency
	To        Currency
	Rate      float64
	Timestamp time.Time
}

// Conversion is the result of converting an amount between currencies.
type Conversion struct {
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
	From            Currency
	To              Currency
	Rate            float64
	Timestamp       time.Time
}

// Rates resolves exchange rates between currency pairs. It is a plain value
// meant to be constructed once and handed to whatever needs conversions.
//
// Resolution never fails: a missing pair degrades to the identity rate with a
// log line, so a display path never breaks on an exotic currency.
type Rates struct {
	pairs map[string]Rate
}

func pairKey(from, to Currency) string { return string(from) + "-" + string(to) }

// NewRates returns a rate table seeded with the built-in pairs.
func NewRates() *Rates {
	r := &Rates{pairs: make(map[string]Rate)}
	now := time.Now()
	r.SetRate(Rate{From: USD, To: HKD, Rate: 7.8, Timestamp: now})
	r.SetRate(Rate{From: HKD, To: USD, Rate: 0.128, Timestamp: now})
	return r
}

// SetRate records a known rate, overwriting any previous one for the pair.
func (r *Rates) SetRate(rate Rate) {
	r.pairs[pairKey(rate.From, rate.To)] = rate
}

// All returns the stored rates sorted by pair.
func (r *Rates) All() []Rate {
	rates := make([]Rate, 0, len(r.pairs))
	for _, k := range sortedKeys(r.pairs) {
		rates = append(rates, r.pairs[k])
	}
	return rates
}

// lookup finds a rate for the pair, trying the direct entry then the inverse.
func (r *Rates) lookup(from, to Currency) (float64, bool) {
	if rate, ok := r.pairs[pairKey(from, to)]; ok {
		return rate.Rate, true
	}
	if rate, ok := r.pairs[pairKey(to, from)]; ok && rate.Rate != 0 {
		return 1 / rate.Rate, true
	}
	return 0, false
}

// ExchangeRate returns the rate converting 'from' into 'to'.
//
// It tries, in order: the identity (same currency), the direct pair, the
// inverse pair, and a two-leg conversion through USD. When everything fails
// it returns 1 so the caller's total stays usable.
func (r *Rates) ExchangeRate(from, to Currency) float64 {
	if from == to {
		return 1
	}
	if rate, ok := r.lookup(from, to); ok {
		return rate
	}
	fromUSD, ok1 := r.lookup(from, USD)
	usdTo, ok2 := r.lookup(USD, to)
	if ok1 && ok2 {
		return fromUSD * usdTo
	}
	log.Printf("no exchange rate for %s to %s, using 1", from, to)
	return 1
}

// Convert converts an amount between currencies. It always succeeds.
func (r *Rates) Convert(amount decimal.Decimal, from, to Currency) Conversion {
	rate := r.ExchangeRate(from, to)
	return Conversion{
		Amount:          amount,
		ConvertedAmount: amount.Mul(decimal.NewFromFloat(rate)),
		From:            from,
		To:              to,
		Rate:            rate,
		Timestamp:       time.Now(),
	}
}

// symbols overrides go-money graphemes where the app displays a
// disambiguated symbol.
var symbols = map[Currency]string{
	USD: "$",
	HKD: "HK$",
}

// Symbol returns the display symbol for a currency, or the code itself when
// no symbol is known.
func Symbol(c Currency) string {
	if s, ok := symbols[c]; ok {
		return s
	}
	if cur := money.GetCurrency(string(c)); cur != nil {
		return cur.Grapheme
	}
	return string(c)
}

// FormatMoney formats an amount in the locale convention of its currency,
// like "$1,234.50" or "HK$9,750.00". Unknown codes fall back to
// "<CODE> <amount>" with two decimals.
func FormatMoney(amount decimal.Decimal, c Currency) string {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return fmt.Sprintf("%s %s", c, amount.StringFixed(2))
	}
	if s, ok := symbols[c]; ok && s != cur.Grapheme {
		clone := *cur
		clone.Grapheme = s
		cur = &clone
	}
	minor := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
