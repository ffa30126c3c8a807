package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/digitalstock/renderer"
	"github.com/google/subcommands"
)

// --- Purchase Command ---

type purchaseCmd struct {
	code     string
	name     string
	quantity int
	price    float64
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "register a new product entering stock" }
func (*purchaseCmd) Usage() string {
	return `dgs purchase -c <code> -n <name> -q <quantity> -p <price>

  Registers the purchase of a new product. The product is added to the
  inventory and a purchase for quantity times unit price is recorded in the
  ledger. The code must be unused; codes are unique, case-insensitive.
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Product code (letters, digits, hyphens)")
	f.StringVar(&c.name, "n", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity purchased")
	f.Float64Var(&c.price, "p", 0, "Purchase price per unit")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rec, err := s.Purchase(c.code, c.name, c.quantity, s.M(c.price))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(rec))
	return subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	code     string
	quantity int
	price    float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units of a product in stock" }
func (*sellCmd) Usage() string {
	return `dgs sell -c <code> -q <quantity> -p <price>

  Sells units of an existing product at the given sale price per unit. The
  stock is decremented and a sale for quantity times unit price is recorded
  in the ledger. The sale price is independent of the purchase price.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Product code")
	f.IntVar(&c.quantity, "q", 0, "Quantity sold")
	f.Float64Var(&c.price, "p", 0, "Sale price per unit")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rec, err := s.Sell(c.code, c.quantity, s.M(c.price))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(rec))
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type removeCmd struct {
	code string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete a product from the inventory" }
func (*removeCmd) Usage() string {
	return `dgs remove -c <code>

  Deletes a product from the inventory. Removal is not a financial
  transaction: the product's purchase and sale history stays in the ledger.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Product code")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := s.Remove(c.code)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %s (%s), %d units were in stock\n", removed.Name, removed.Code, removed.Quantity)
	return subcommands.ExitSuccess
}
