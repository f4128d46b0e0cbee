package fintrack

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the direction of a ledger entry.
type Kind string

// Kinds of ledger entries.
const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// TimestampFormat is the wall-clock format stamped on every ledger entry.
const TimestampFormat = "2006-01-02 15:04:05"

// now is a variable so tests can pin the clock.
var now = time.Now

// Timestamp returns the current wall-clock time in the ledger's format.
func Timestamp() string { return now().Format(TimestampFormat) }

// Transaction is a single, immutable ledger entry. The total amount is
// derived from the unit price and the quantity at construction time; it is
// never settable afterwards, except by the legacy decode path that preserves
// historically recorded totals verbatim.
type Transaction struct {
	kind      Kind
	unitPrice decimal.Decimal
	quantity  int64
	amount    decimal.Decimal
	itemName  string
	note      string
	timestamp string
}

// NewTransaction creates a ledger entry. The kind is normalized to
// lowercase, the item name and note are trimmed, and the timestamp is set to
// the current wall-clock time.
//
// It fails with a *ValidationError when the unit price or the quantity is
// not positive, or when an expense has no item name.
func NewTransaction(kind Kind, unitPrice decimal.Decimal, quantity int64, itemName, note string) (Transaction, error) {
	if !unitPrice.IsPositive() || quantity <= 0 {
		return Transaction{}, &ValidationError{Reason: "unit price and quantity must be greater than zero"}
	}
	kind = Kind(strings.ToLower(strings.TrimSpace(string(kind))))
	itemName = strings.TrimSpace(itemName)
	if kind == Expense && itemName == "" {
		return Transaction{}, &ValidationError{Reason: "an item name is required for expenses"}
	}
	return Transaction{
		kind:      kind,
		unitPrice: unitPrice,
		quantity:  quantity,
		amount:    unitPrice.Mul(decimal.NewFromInt(quantity)),
		itemName:  itemName,
		note:      strings.TrimSpace(note),
		timestamp: Timestamp(),
	}, nil
}

// Kind returns the entry's direction, income or expense.
func (t Transaction) Kind() Kind { return t.kind }

// UnitPrice returns the price of a single item.
func (t Transaction) UnitPrice() decimal.Decimal { return t.unitPrice }

// Quantity returns the number of items.
func (t Transaction) Quantity() int64 { return t.quantity }

// Amount returns the entry's total amount.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// ItemName returns what the entry was for. It can be empty for incomes.
func (t Transaction) ItemName() string { return t.itemName }

// Note returns the optional free-text note.
func (t Transaction) Note() string { return t.note }

// When returns the entry's timestamp in TimestampFormat form.
func (t Transaction) When() string { return t.timestamp }

// SignedAmount returns the entry's contribution to the running balance:
// positive for an income, negative otherwise.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.kind == Income {
		return t.amount
	}
	return t.amount.Neg()
}

func (t Transaction) Equal(o Transaction) bool {
	return t.kind == o.kind &&
		t.unitPrice.Equal(o.unitPrice) &&
		t.quantity == o.quantity &&
		t.amount.Equal(o.amount) &&
		t.itemName == o.itemName &&
		t.note == o.note &&
		t.timestamp == o.timestamp
}
