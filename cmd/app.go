// Package cmd implements the CLI application to manage a digital stock.
package cmd

import (
	"flag"

	"github.com/etnz/digitalstock"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&purchaseCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&inventoryCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")
	c.Register(&lowStockCmd{}, "inventory")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use package-level flags.

var inventoryFile = flag.String("inventory-file", "inventory.jsonl", "Path to the inventory file (JSONL format)")
var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var currency = flag.String("currency", "ARS", "Currency code used for all amounts")

// openSystem loads both resources into a ready accounting system.
func openSystem() (*digitalstock.AccountingSystem, error) {
	return digitalstock.NewAccountingSystem(*inventoryFile, *ledgerFile, *currency)
}
