package fintrack

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// unknownDate is stamped on decoded records that carry no date at all.
const unknownDate = "Unknown Date"

// record is the canonical persisted shape of a transaction.
type record struct {
	Date      string          `json:"date"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	ItemName  string          `json:"item_name"`
	Note      string          `json:"note"`
}

// jrecord is a specialized struct to read a persisted record with all the
// fields any historical shape of the file may carry. Pointers distinguish a
// missing field from a zero one.
type jrecord struct {
	Date        *string          `json:"date"`
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Quantity    *int64           `json:"quantity"`
	ItemName    *string          `json:"item_name"`
	Description *string          `json:"description"`
	Note        *string          `json:"note"`
}

// encodeRecord converts a transaction to its canonical persisted record.
func encodeRecord(t Transaction) record {
	return record{
		Date:      t.timestamp,
		Type:      string(t.kind),
		Amount:    t.amount,
		UnitPrice: t.unitPrice,
		Quantity:  t.quantity,
		ItemName:  t.itemName,
		Note:      t.note,
	}
}

// transaction rebuilds a Transaction from a decoded record. Legacy shapes
// (records lacking unit_price/quantity, or naming the item "description")
// are accepted, and a salvage fallback guarantees that persisted data is
// never rejected outright.
func (jr jrecord) transaction() Transaction {
	itemName := "N/A"
	if jr.ItemName != nil && strings.TrimSpace(*jr.ItemName) != "" {
		itemName = *jr.ItemName
	} else if jr.Description != nil {
		itemName = *jr.Description
	}

	note := ""
	if jr.Note != nil {
		note = *jr.Note
	}

	// Legacy records stored only the total: read it back as a price for a
	// quantity of one.
	total := decimal.Zero
	if jr.Amount != nil {
		total = *jr.Amount
	}
	unitPrice := total
	if jr.UnitPrice != nil {
		unitPrice = *jr.UnitPrice
	}
	quantity := int64(1)
	if jr.Quantity != nil {
		quantity = *jr.Quantity
	}

	tx, err := NewTransaction(Kind(jr.Type), unitPrice, quantity, itemName, note)
	if err != nil {
		// Salvage corrupted records with minimal data. This construction
		// always satisfies the positivity and item-name rules.
		unitPrice = decimal.NewFromInt(1)
		if total.IsPositive() {
			unitPrice = total
		}
		if strings.TrimSpace(itemName) == "" {
			itemName = "N/A"
		}
		tx, _ = NewTransaction(Kind(jr.Type), unitPrice, 1, itemName, note)
	}

	tx.timestamp = unknownDate
	if jr.Date != nil {
		tx.timestamp = *jr.Date
	}

	// A pure legacy record keeps its historically recorded total verbatim,
	// even when the salvage path picked a different unit price.
	if jr.UnitPrice == nil && jr.Quantity == nil {
		tx.amount = total
	}
	return tx
}

// EncodeTransactions writes the whole sequence to w as a single indented
// JSON array, one record per transaction, in order.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	records := make([]record, 0, len(txs))
	for _, tx := range txs {
		records = append(records, encodeRecord(tx))
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transactions: %w", err)
	}
	return nil
}

// DecodeTransactions reads a full ledger file from r. Individual records are
// always salvaged; only a malformed container is an error.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var jrecords []jrecord
	if err := json.Unmarshal(data, &jrecords); err != nil {
		return nil, fmt.Errorf("ledger file is not a valid transaction list: %w", err)
	}
	txs := make([]Transaction, 0, len(jrecords))
	for _, jr := range jrecords {
		txs = append(txs, jr.transaction())
	}
	return txs, nil
}
