package dashboard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	Stocks      InvestmentType = "stocks"
	Bonds       InvestmentType = "bonds"
	Crypto      InvestmentType = "crypto"
	RealEstate  InvestmentType = "real_estate"
	MutualFunds InvestmentType = "mutual_funds"
	OtherAsset  InvestmentType = "other"
)

var investmentTypes = []string{
	string(Stocks), string(Bonds), string(Crypto),
	string(RealEstate), string(MutualFunds), string(OtherAsset),
}

// InvestmentTypes lists the known investment type codes.
func InvestmentTypes() []string { return append([]string(nil), investmentTypes...) }

// ParseInvestmentType parses an investment type string.
func ParseInvestmentType(s string) (InvestmentType, error) {
	t := InvestmentType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Stocks, Bonds, Crypto, RealEstate, MutualFunds, OtherAsset:
		return t, nil
	}
	return "", fmt.Errorf("unknown investment type %q", s)
}

// Investment is a holding with a purchase price and a current price. Gains
// are derived, never stored.
type Investment struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          InvestmentType  `json:"type"`
	Symbol        string          `json:"symbol,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	PurchaseDate  Date            `json:"purchaseDate"`
	Currency      Currency        `json:"currency"`
	Description   string          `json:"description,omitempty"`
}

// NewInvestment returns an investment with a fresh ID. The current price
// starts at the purchase price.
func NewInvestment(name string, t InvestmentType, quantity, purchasePrice decimal.Decimal, on Date, cur Currency) Investment {
	return Investment{
		ID:            uuid.NewString(),
		Name:          name,
		Type:          t,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentPrice:  purchasePrice,
		PurchaseDate:  on,
		Currency:      cur,
	}
}

// CurrentValue returns quantity times current price.
func (i Investment) CurrentValue() decimal.Decimal {
	return i.CurrentPrice.Mul(i.Quantity)
}

// PurchaseValue returns quantity times purchase price.
func (i Investment) PurchaseValue() decimal.Decimal {
	return i.PurchasePrice.Mul(i.Quantity)
}

// GainLoss returns the unrealized gain (or loss, negative) on the holding.
func (i Investment) GainLoss() decimal.Decimal {
	return i.CurrentPrice.Sub(i.PurchasePrice).Mul(i.Quantity)
}

// GainLossPercent returns the gain as a percentage of the purchase price.
// A zero purchase price (gifted or airdropped holdings) reports 0 rather
// than an infinite return.
func (i Investment) GainLossPercent() Percent {
	if i.PurchasePrice.IsZero() {
		return 0
	}
	ratio := i.CurrentPrice.Sub(i.PurchasePrice).Div(i.PurchasePrice)
	return Percent(ratio.InexactFloat64() * 100)
}

// Validate checks the investment invariants.
func (i Investment) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("investment has no id")
	}
	if i.Name == "" {
		return fmt.Errorf("investment %s: missing name", i.ID)
	}
	if _, err := ParseInvestmentType(string(i.Type)); err != nil {
		return fmt.Errorf("investment %s: %w", i.ID, err)
	}
	if i.Quantity.IsNegative() {
		return fmt.Errorf("investment %s: quantity %s is negative", i.ID, i.Quantity)
	}
	return nil
}

// InvestmentPatch carries the fields of a partial update. Nil fields are
// left untouched.
type InvestmentPatch struct {
	Name          *string
	Type          *InvestmentType
	Symbol        *string
	Quantity      *decimal.Decimal
	PurchasePrice *decimal.Decimal
	CurrentPrice  *decimal.Decimal
	PurchaseDate  *Date
	Currency      *Currency
	Description   *string
}

func (p InvestmentPatch) apply(i *Investment) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Symbol != nil {
		i.Symbol = *p.Symbol
	}
	if p.Quantity != nil {
		i.Quantity = *p.Quantity
	}
	if p.PurchasePrice != nil {
		i.PurchasePrice = *p.PurchasePrice
	}
	if p.CurrentPrice != nil {
		i.CurrentPrice = *p.CurrentPrice
	}
	if p.PurchaseDate != nil {
		i.PurchaseDate = *p.PurchaseDate
	}
	if p.Currency != nil {
		i.Currency = *p.Currency
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
}
