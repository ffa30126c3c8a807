package digitalstock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// DecodeLedger decodes transaction records from a stream of JSONL data. It is
// the strict counterpart of LoadLedger: any unparseable line or unknown kind
// is an error. Records are kept in file order, which is chronological for a
// ledger written by this package.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		// Use a temporary type that has all possible fields.
		var temp struct {
			Kind string `json:"kind"`
			ID   string `json:"id"`
			Code string `json:"code"`
			Name string `json:"name"`
			amountCmd
			Quantity  int       `json:"quantity"`
			Timestamp time.Time `json:"timestamp"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, fmt.Errorf("could not decode record line %q: %w", string(lineBytes), err)
		}

		kind, err := ParseKind(temp.Kind)
		if err != nil {
			return nil, err
		}

		ledger.Append(TransactionRecord{
			Kind:      kind,
			ID:        temp.ID,
			Code:      temp.Code,
			Name:      temp.Name,
			Quantity:  temp.Quantity,
			Amount:    temp.Money(),
			Timestamp: temp.Timestamp,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeRecord marshals a single transaction record to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, rec TransactionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction record: %w", err)
	}
	return nil
}

// EncodeLedger persists all records to an io.Writer in JSONL format. Records
// are written in insertion order; the ledger is never reordered.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, rec := range ledger.Records() {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
