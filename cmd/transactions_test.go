package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/digitalstock"
	"github.com/google/subcommands"
)

// useTempFiles points the package flags at files inside a fresh temp dir for
// the duration of one test.
func useTempFiles(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	inv := filepath.Join(tmp, "inventory.jsonl")
	led := filepath.Join(tmp, "ledger.jsonl")

	oldInv, oldLed := inventoryFile, ledgerFile
	inventoryFile, ledgerFile = &inv, &led
	t.Cleanup(func() { inventoryFile, ledgerFile = oldInv, oldLed })
	return inv, led
}

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestPurchaseThenSell(t *testing.T) {
	invFile, ledFile := useTempFiles(t)

	if status := execute(t, &purchaseCmd{}, "-c", "A1", "-n", "Widget", "-q", "5", "-p", "10.0"); status != subcommands.ExitSuccess {
		t.Fatalf("purchase: expected ExitSuccess, got %v", status)
	}
	if status := execute(t, &sellCmd{}, "-c", "a1", "-q", "2", "-p", "15.0"); status != subcommands.ExitSuccess {
		t.Fatalf("sell: expected ExitSuccess, got %v", status)
	}

	// Both resources were persisted with the expected state.
	inv, err := digitalstock.LoadInventory(invFile)
	if err != nil {
		t.Fatal(err)
	}
	p := inv.Find("A1")
	if p == nil || p.Quantity != 3 {
		t.Errorf("persisted product = %+v, want A1 with quantity 3", p)
	}

	ledger, err := digitalstock.LoadLedger(ledFile)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("persisted ledger length = %d, want 2", ledger.Len())
	}
	b, err := ledger.Balance()
	if err != nil {
		t.Fatal(err)
	}
	if !b.Purchases.Equal(digitalstock.M(50.0, "ARS")) || !b.Sales.Equal(digitalstock.M(30.0, "ARS")) {
		t.Errorf("persisted balance = %+v, want (50.0, 30.0)", b)
	}
}

func TestPurchaseDuplicateFails(t *testing.T) {
	useTempFiles(t)

	if status := execute(t, &purchaseCmd{}, "-c", "A1", "-n", "Widget", "-q", "5", "-p", "10.0"); status != subcommands.ExitSuccess {
		t.Fatalf("purchase: expected ExitSuccess, got %v", status)
	}
	if status := execute(t, &purchaseCmd{}, "-c", "a1", "-n", "Other", "-q", "1", "-p", "1.0"); status != subcommands.ExitFailure {
		t.Errorf("duplicate purchase: expected ExitFailure, got %v", status)
	}
}

func TestRemoveKeepsLedger(t *testing.T) {
	invFile, ledFile := useTempFiles(t)

	execute(t, &purchaseCmd{}, "-c", "A1", "-n", "Widget", "-q", "5", "-p", "10.0")
	if status := execute(t, &removeCmd{}, "-c", "A1"); status != subcommands.ExitSuccess {
		t.Fatalf("remove: expected ExitSuccess, got %v", status)
	}

	content, err := os.ReadFile(invFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(content)) != "" {
		t.Errorf("inventory file after removal = %q, want empty", content)
	}

	ledger, err := digitalstock.LoadLedger(ledFile)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 1 {
		t.Errorf("ledger length after removal = %d, want 1", ledger.Len())
	}
}
