package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInvestmentGainLoss(t *testing.T) {
	tests := []struct {
		name        string
		quantity    float64
		purchase    float64
		current     float64
		wantGain    float64
		wantPercent Percent
	}{
		{"gain", 10, 150, 160, 100, 6.6667},
		{"loss", 10, 150, 140, -100, -6.6667},
		{"flat", 5, 100, 100, 0, 0},
		// gifted holdings have no purchase price: report 0, not infinity
		{"zero purchase price", 2, 0, 500, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Investment{
				ID:            "x",
				Name:          "test",
				Type:          Stocks,
				Quantity:      D(tt.quantity),
				PurchasePrice: D(tt.purchase),
				CurrentPrice:  D(tt.current),
			}
			if got := inv.GainLoss(); !got.Equal(D(tt.wantGain)) {
				t.Errorf("GainLoss() = %s, want %v", got, tt.wantGain)
			}
			if got := inv.GainLossPercent(); !got.Equal(tt.wantPercent) {
				t.Errorf("GainLossPercent() = %s, want %s", got, tt.wantPercent)
			}
		})
	}
}

func TestInvestmentValues(t *testing.T) {
	inv := NewInvestment("Futu", OtherAsset, decimal.NewFromInt(1), D(50000), MustParseDate("2026-08-01"), HKD)
	// a fresh investment starts at its purchase price
	if !inv.CurrentPrice.Equal(D(50000)) {
		t.Errorf("CurrentPrice = %s, want 50000", inv.CurrentPrice)
	}
	if !inv.CurrentValue().Equal(D(50000)) || !inv.PurchaseValue().Equal(D(50000)) {
		t.Errorf("values = %s / %s", inv.CurrentValue(), inv.PurchaseValue())
	}
	if inv.ID == "" {
		t.Error("no id assigned")
	}
}

func TestParseInvestmentType(t *testing.T) {
	if got, err := ParseInvestmentType("Real_Estate"); err != nil || got != RealEstate {
		t.Errorf("ParseInvestmentType(Real_Estate) = %v, %v", got, err)
	}
	if _, err := ParseInvestmentType("gold"); err == nil {
		t.Error("unknown type accepted")
	}
}
