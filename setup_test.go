package dashboard

import "testing"

func TestSetupApply(t *testing.T) {
	s := NewStore()
	setup := Setup{
		Accounts: []SetupAccount{
			{Name: "BOC", Type: Savings, Balance: D(12000), Currency: HKD},
			{Name: "Empty", Type: Checking, Balance: D(0), Currency: HKD},
		},
		Investments: []SetupInvestment{
			{Name: "Futu", Balance: D(50000), Currency: HKD},
			{Name: "", Balance: D(100), Currency: HKD}, // skipped: no name
		},
		Debts: []SetupDebt{
			{Name: "Mox", Type: "credit_card", Balance: D(3000), Currency: HKD},
		},
	}

	on := MustParseDate("2026-08-28")
	if err := setup.Apply(s, on); err != nil {
		t.Fatal(err)
	}

	// every account gets a record, even the zero-balance one
	if got := len(s.Accounts()); got != 2 {
		t.Errorf("accounts = %d, want 2", got)
	}
	// only named, funded investments get records
	invs := s.Investments()
	if len(invs) != 1 || invs[0].Name != "Futu" {
		t.Fatalf("investments = %+v, want one Futu", invs)
	}
	if !invs[0].Quantity.Equal(D(1)) || !invs[0].PurchasePrice.Equal(D(50000)) {
		t.Errorf("investment modeled as %s x %s, want 1 x 50000", invs[0].Quantity, invs[0].PurchasePrice)
	}

	// mirror transactions: BOC asset, Futu asset, Mox liability
	txs := s.Transactions()
	if len(txs) != 3 {
		t.Fatalf("transactions = %d, want 3", len(txs))
	}

	byDescription := make(map[string]Transaction)
	for _, tx := range txs {
		byDescription[tx.Description] = tx
	}

	boc, ok := byDescription["Initial BOC balance"]
	if !ok {
		t.Fatal("missing BOC mirror transaction")
	}
	if boc.Type != TypeAsset || boc.Category.String() != InitialBalanceLabel || boc.Category.Kind() != LabelKind {
		t.Errorf("BOC mirror = %+v", boc)
	}

	futu, ok := byDescription["Initial Futu investment"]
	if !ok {
		t.Fatal("missing Futu mirror transaction")
	}
	if futu.Type != TypeAsset || futu.Category.String() != "other" {
		t.Errorf("Futu mirror = %+v", futu)
	}
	// the mirror is an independent record: nothing links it to the
	// investment it describes
	if futu.ID == invs[0].ID {
		t.Error("mirror transaction shares the investment id")
	}

	mox, ok := byDescription["Initial Mox debt"]
	if !ok {
		t.Fatal("missing Mox mirror transaction")
	}
	if mox.Type != TypeLiability || mox.Category.String() != DebtLabel || mox.Account != "credit_card" {
		t.Errorf("Mox mirror = %+v", mox)
	}
}

func TestSetupValidate(t *testing.T) {
	bad := Setup{Accounts: []SetupAccount{{Name: "", Type: Savings}}}
	if err := bad.Apply(NewStore(), Today()); err == nil {
		t.Error("empty account name was accepted")
	}

	neg := Setup{Debts: []SetupDebt{{Name: "Mox", Balance: D(-1)}}}
	if err := neg.Apply(NewStore(), Today()); err == nil {
		t.Error("negative debt was accepted")
	}
}
