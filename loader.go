package digitalstock

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// The Load functions favor availability over strict integrity: a missing file
// is first-run semantics and a corrupt file must never block startup, so both
// degrade to an empty collection. Callers needing stricter guarantees decode
// the file themselves with DecodeInventory or DecodeLedger.

// LoadInventory reads the inventory resource at path. A missing file yields
// an empty inventory; a malformed file is reported on the log and also yields
// an empty inventory.
func LoadInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewInventory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		log.Printf("warning: inventory file %q is corrupt, starting empty: %v", path, err)
		return NewInventory(), nil
	}
	return inv, nil
}

// SaveInventory rewrites the whole inventory resource at path atomically.
func SaveInventory(path string, inv *Inventory) error {
	return writeAtomic(path, func(f *os.File) error { return EncodeInventory(f, inv) })
}

// LoadLedger reads the ledger resource at path, with the same missing and
// malformed file tolerance as LoadInventory.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		log.Printf("warning: ledger file %q is corrupt, starting empty: %v", path, err)
		return NewLedger(), nil
	}
	return ledger, nil
}

// SaveLedger rewrites the whole ledger resource at path atomically. The
// ledger is logically append-only; the full rewrite keeps the implementation
// simple while the atomic replace guarantees the previous history is never
// left half-written.
func SaveLedger(path string, ledger *Ledger) error {
	return writeAtomic(path, func(f *os.File) error { return EncodeLedger(f, ledger) })
}

// writeAtomic writes to a temporary file in the target directory and renames
// it over path, so an interrupted write never corrupts the previous content.
func writeAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file for %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}
