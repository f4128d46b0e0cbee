package fintrack

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Store owns the ordered sequence of transactions, one-to-one with its
// backing file. Insertion order is the chronological order of creation, and
// the ledger is append-only: entries are never updated or deleted in place.
//
// The design presumes a single writer at a time; an internal mutex
// serializes access for hosts that call from several goroutines.
type Store struct {
	mu   sync.Mutex
	path string
	txs  []Transaction
}

// Open loads the ledger from its backing file. A missing file starts an
// empty ledger; a corrupt or unreadable one is never fatal to startup, the
// condition is logged and the ledger starts empty.
func Open(path string) *Store {
	s := &Store{path: path}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s
	}
	if err != nil {
		log.Printf("warning: cannot read ledger file %q: %v, starting with an empty ledger", path, err)
		return s
	}
	defer f.Close()

	txs, err := DecodeTransactions(f)
	if err != nil {
		log.Printf("warning: cannot decode ledger file %q: %v, starting with an empty ledger", path, err)
		return s
	}
	s.txs = txs
	return s
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Append parses the raw numeric inputs, creates a transaction, appends it to
// the ledger and persists the whole sequence.
//
// Bad input surfaces a *ValidationError and leaves the ledger untouched. On
// a persistence failure the appended entry is kept in memory, so the running
// session does not lose it, and a *PersistenceError is returned so the
// caller can warn that the entry is not yet durable.
func (s *Store) Append(kind Kind, unitPriceRaw, quantityRaw, itemName, note string) (Transaction, error) {
	unitPrice, err := decimal.NewFromString(strings.TrimSpace(unitPriceRaw))
	if err != nil {
		return Transaction{}, &ValidationError{Reason: "unit price must be a positive number"}
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(quantityRaw), 10, 64)
	if err != nil {
		return Transaction{}, &ValidationError{Reason: "quantity must be a positive integer"}
	}

	tx, err := NewTransaction(kind, unitPrice, quantity, itemName, note)
	if err != nil {
		return Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return tx, s.persist()
}

// Save serializes the current sequence and overwrites the backing file. It
// is a whole-file rewrite, not incremental; the in-memory state is left
// untouched on failure.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// persist rewrites the backing file. Callers must hold s.mu.
func (s *Store) persist() error {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, s.txs); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Balance returns the sum of signed amounts over all transactions. It scans
// the whole sequence; no caching, acceptable at personal-ledger scale.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	balance := decimal.Zero
	for _, tx := range s.txs {
		balance = balance.Add(tx.SignedAmount())
	}
	return balance
}

// Transactions returns the full ordered sequence, oldest first. The slice is
// a copy; mutating it does not affect the ledger.
func (s *Store) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.txs)
}
