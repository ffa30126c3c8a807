package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/digitalstock"
	"github.com/etnz/digitalstock/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct {
	code string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the products in stock" }
func (*inventoryCmd) Usage() string {
	return `dgs inventory [-c <code>]

  Lists all products in stock, sorted by name. With -c, looks up a single
  product by its code (case-insensitive).
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Look up a single product by code")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.code != "" {
		p := s.Inventory.Find(c.code)
		if p == nil {
			fmt.Fprintf(os.Stderr, "product %q not found\n", c.code)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Product(*p))
		return subcommands.ExitSuccess
	}

	var products []digitalstock.Product
	for _, p := range s.Inventory.Products() {
		products = append(products, p)
	}
	printMarkdown(renderer.Inventory(products, s.Inventory.TotalStock()))
	return subcommands.ExitSuccess
}

type lowStockCmd struct {
	threshold int
}

func (*lowStockCmd) Name() string     { return "low-stock" }
func (*lowStockCmd) Synopsis() string { return "list products below the reorder threshold" }
func (*lowStockCmd) Usage() string {
	return `dgs low-stock [-t <threshold>]

  Lists products whose quantity is below the threshold (default 10), ordered
  by ascending quantity.
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.threshold, "t", 10, "Reorder threshold")
}

func (c *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LowStock(s.LowStock(c.threshold), c.threshold))
	return subcommands.ExitSuccess
}
