package fintrack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempLedger(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "transactions.json")
}

func TestStore_AppendCreatesFile(t *testing.T) {
	path := tempLedger(t)
	store := Open(path)

	tx, err := store.Append(Income, "100", "1", "Salary", "")
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// A new store instance on the same file reproduces the sequence.
	reloaded := Open(path).Transactions()
	if len(reloaded) != 1 {
		t.Fatalf("got %d transactions after reload, want 1", len(reloaded))
	}
	got := reloaded[0]
	if got.Kind() != tx.Kind() || !got.Amount().Equal(tx.Amount()) || got.When() != tx.When() {
		t.Errorf("reloaded transaction %+v differs from appended %+v", got, tx)
	}
}

func TestStore_Balance(t *testing.T) {
	store := Open(tempLedger(t))

	appends := []struct {
		kind      Kind
		unitPrice string
	}{
		{Income, "100"},
		{Expense, "30"},
		{Income, "5"},
	}
	for _, a := range appends {
		if _, err := store.Append(a.kind, a.unitPrice, "1", "item", ""); err != nil {
			t.Fatalf("Append(%s, %s) error = %v", a.kind, a.unitPrice, err)
		}
	}

	if balance := store.Balance(); !balance.Equal(d("75")) {
		t.Errorf("got balance %s, want 75", balance)
	}
}

func TestStore_AppendRejectsBadInput(t *testing.T) {
	path := tempLedger(t)
	store := Open(path)

	testCases := []struct {
		name      string
		unitPrice string
		quantity  string
	}{
		{name: "negative price", unitPrice: "-5", quantity: "1"},
		{name: "non numeric price", unitPrice: "abc", quantity: "1"},
		{name: "zero quantity", unitPrice: "5", quantity: "0"},
		{name: "fractional quantity", unitPrice: "5", quantity: "1.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Append(Income, tc.unitPrice, tc.quantity, "item", "")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Append() error = %v, want a *ValidationError", err)
			}
		})
	}

	if got := len(store.Transactions()); got != 0 {
		t.Errorf("got %d transactions after rejected appends, want 0", got)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("backing file %q should not have been created", path)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	store := Open(tempLedger(t))
	if got := len(store.Transactions()); got != 0 {
		t.Errorf("got %d transactions from a missing file, want 0", got)
	}
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := tempLedger(t)
	if err := os.WriteFile(path, []byte("not json at all"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	store := Open(path)
	if got := len(store.Transactions()); got != 0 {
		t.Errorf("got %d transactions from a corrupt file, want 0", got)
	}

	// The ledger keeps working for the rest of the session.
	if _, err := store.Append(Income, "10", "1", "", ""); err != nil {
		t.Fatalf("Append() after corrupt load error = %v", err)
	}
}

func TestStore_AppendKeptOnPersistenceFailure(t *testing.T) {
	// Point the backing file at a directory to force the write to fail.
	dir := t.TempDir()
	store := Open(filepath.Join(dir, "missing", "transactions.json"))

	_, err := store.Append(Income, "10", "1", "", "")
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Append() error = %v, want a *PersistenceError", err)
	}
	if got := len(store.Transactions()); got != 1 {
		t.Errorf("got %d transactions after failed persist, want the appended entry kept", got)
	}
}

func TestStore_TransactionsIsACopy(t *testing.T) {
	store := Open(tempLedger(t))
	if _, err := store.Append(Income, "10", "1", "", ""); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	view := store.Transactions()
	view[0] = Transaction{}
	if store.Transactions()[0].Amount().IsZero() {
		t.Error("mutating the returned slice must not affect the ledger")
	}
}
