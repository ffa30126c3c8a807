package digitalstock

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeLedger(t *testing.T) {
	jsonlStream := `
{"kind":"purchase","id":"0c9a3a1e-0000-4000-8000-000000000001","code":"A1","name":"Widget","quantity":5,"currency":"ARS","amount":52.5,"timestamp":"2026-08-29T10:00:00Z"}
{"kind":"sale","id":"0c9a3a1e-0000-4000-8000-000000000002","code":"A1","name":"Widget","quantity":2,"currency":"ARS","amount":30,"timestamp":"2026-08-29T11:30:00Z"}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("DecodeLedger() decoded %d records, want 2", ledger.Len())
	}

	want := []TransactionRecord{
		{
			Kind: Purchase, ID: "0c9a3a1e-0000-4000-8000-000000000001",
			Code: "A1", Name: "Widget", Quantity: 5, Amount: M(52.5, "ARS"),
			Timestamp: time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			Kind: Sale, ID: "0c9a3a1e-0000-4000-8000-000000000002",
			Code: "A1", Name: "Widget", Quantity: 2, Amount: M(30, "ARS"),
			Timestamp: time.Date(2026, time.August, 29, 11, 30, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, ledger.records); diff != "" {
		t.Errorf("decoded records mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLedger_UnknownKind(t *testing.T) {
	input := `{"kind":"refund","code":"A1","quantity":1,"amount":1,"timestamp":"2026-08-29T10:00:00Z"}`
	if _, err := DecodeLedger(strings.NewReader(input)); err == nil {
		t.Error("DecodeLedger() should fail on an unknown kind")
	}
}

func TestEncodeLedger_RoundTrip(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewPurchase("A1", "Widget", 5, M(52.5, "ARS")),
		NewSale("A1", "Widget", 2, M(30.0, "ARS")),
		NewPurchase("B2", "Gadget, deluxe", 7, M(0.49, "ARS")),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if diff := cmp.Diff(ledger.records, decoded.records); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRecord_CanonicalOrder(t *testing.T) {
	rec := TransactionRecord{
		Kind: Sale, ID: "0c9a3a1e-0000-4000-8000-000000000002",
		Code: "A1", Name: "Widget", Quantity: 2, Amount: M(30, "ARS"),
		Timestamp: time.Date(2026, time.August, 29, 11, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := EncodeRecord(&buf, rec); err != nil {
		t.Fatalf("EncodeRecord() returned an unexpected error: %v", err)
	}
	want := `{"kind":"sale","id":"0c9a3a1e-0000-4000-8000-000000000002","code":"A1","name":"Widget","quantity":2,"currency":"ARS","amount":30,"timestamp":"2026-08-29T11:30:00Z"}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeRecord() produced incorrect output.\nGot:  %sWant: %s", got, want)
	}
}
