package digitalstock

import (
	"testing"
)

func TestLedger_Append(t *testing.T) {
	ledger := NewLedger()
	if ledger.Len() != 0 {
		t.Fatalf("new ledger length = %d, want 0", ledger.Len())
	}

	r1 := NewPurchase("A1", "Widget", 5, M(50.0, "ARS"))
	r2 := NewSale("A1", "Widget", 2, M(30.0, "ARS"))
	ledger.Append(r1)
	ledger.Append(r2)

	if ledger.Len() != 2 {
		t.Fatalf("ledger length = %d, want 2", ledger.Len())
	}

	// Records come back in insertion order.
	want := []TransactionRecord{r1, r2}
	for i, rec := range ledger.Records() {
		if !rec.Equal(want[i]) {
			t.Errorf("Records()[%d] = %+v, want %+v", i, rec, want[i])
		}
	}

	if r1.ID == r2.ID || r1.ID == "" {
		t.Errorf("record IDs must be unique and non-empty, got %q and %q", r1.ID, r2.ID)
	}
}

func TestLedger_Balance(t *testing.T) {
	ledger := NewLedger()

	b, err := ledger.Balance()
	if err != nil {
		t.Fatalf("Balance() returned an unexpected error: %v", err)
	}
	if !b.Purchases.IsZero() || !b.Sales.IsZero() {
		t.Fatalf("Balance() on empty ledger = %+v, want zero totals", b)
	}

	ledger.Append(
		NewPurchase("A1", "Widget", 5, M(50.0, "ARS")),
		NewPurchase("B2", "Gadget", 10, M(25.0, "ARS")),
		NewSale("A1", "Widget", 2, M(30.0, "ARS")),
	)

	b, err = ledger.Balance()
	if err != nil {
		t.Fatalf("Balance() returned an unexpected error: %v", err)
	}
	if want := M(75.0, "ARS"); !b.Purchases.Equal(want) {
		t.Errorf("total purchases = %s, want %s", b.Purchases, want)
	}
	if want := M(30.0, "ARS"); !b.Sales.Equal(want) {
		t.Errorf("total sales = %s, want %s", b.Sales, want)
	}
	if want := M(-45.0, "ARS"); !b.Net().Equal(want) {
		t.Errorf("net balance = %s, want %s", b.Net(), want)
	}
}

func TestLedger_BalanceMixedCurrencies(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewPurchase("A1", "Widget", 5, M(50.0, "ARS")),
		NewSale("A1", "Widget", 2, M(30.0, "USD")),
	)

	if _, err := ledger.Balance(); err == nil {
		t.Error("Balance() on a mixed-currency ledger should fail")
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"purchase", "sale"} {
		kind, err := ParseKind(s)
		if err != nil {
			t.Errorf("ParseKind(%q) returned an unexpected error: %v", s, err)
		}
		if string(kind) != s {
			t.Errorf("ParseKind(%q) = %q", s, kind)
		}
	}
	if _, err := ParseKind("refund"); err == nil {
		t.Error("ParseKind(refund) should fail")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(10.5, "ARS")
	if got, want := a.MulInt(4), M(42.0, "ARS"); !got.Equal(want) {
		t.Errorf("MulInt(4) = %s, want %s", got, want)
	}
	if got, want := a.Add(M(0.25, "ARS")), M(10.75, "ARS"); !got.Equal(want) {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := M(1.0, "ARS").Sub(M(2.5, "ARS")), M(-1.5, "ARS"); !got.Equal(want) {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	// A zero value has a weak currency that defers to its operand.
	var zero Money
	if got := zero.Add(a); got.Currency() != "ARS" || !got.Equal(M(10.5, "ARS")) {
		t.Errorf("zero.Add = %s %s, want ARS 10.5", got, got.Currency())
	}
}
