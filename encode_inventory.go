package digitalstock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// productCmd is a specialized struct for decoding one inventory line.
type productCmd struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
}

// DecodeInventory decodes products from a stream of JSONL data. It is the
// strict counterpart of LoadInventory: any unparseable line or duplicate code
// is an error.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := NewInventory()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var temp productCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, fmt.Errorf("could not decode product line %q: %w", string(lineBytes), err)
		}
		if temp.Code == "" {
			return nil, fmt.Errorf("product line %q has no code", string(lineBytes))
		}

		p := Product{
			Code:      temp.Code,
			Name:      temp.Name,
			Quantity:  temp.Quantity,
			UnitPrice: M(temp.UnitPrice, temp.Currency),
		}
		if err := inv.Add(p); err != nil {
			return nil, fmt.Errorf("could not load inventory: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return inv, nil
}

// EncodeProduct marshals a single product to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeProduct(w io.Writer, p Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal product %q: %w", p.Code, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write product: %w", err)
	}
	return nil
}

// EncodeInventory persists the whole inventory to an io.Writer in JSONL
// format, one product per line, in insertion order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	for _, p := range inv.Products() {
		if err := EncodeProduct(w, p); err != nil {
			return err
		}
	}
	return nil
}
