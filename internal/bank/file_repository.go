package bank

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stonk-bot/stonk_bot/internal/storage"
)

// FileRepository keeps the authoritative ledger document in memory behind one
// mutex and rewrites the backing JSON file after every mutation. An absent
// file bootstraps an empty document; an undecodable file is a fatal
// storage.ErrCorrupt.
type FileRepository struct {
	mu   sync.Mutex
	path string
	doc  map[string]Account
}

// OpenFileRepository loads the ledger document at path.
func OpenFileRepository(path string) (*FileRepository, error) {
	doc := map[string]Account{}
	if err := storage.ReadJSON(path, &doc); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		doc = map[string]Account{}
	}
	return &FileRepository{path: path, doc: doc}, nil
}

func (r *FileRepository) flushLocked() error {
	return storage.WriteJSON(r.path, r.doc)
}

// EnsureAccount creates a zero-balance record for id if absent.
func (r *FileRepository) EnsureAccount(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.doc[id]; exists {
		return false, nil
	}
	r.doc[id] = Account{}
	if err := r.flushLocked(); err != nil {
		delete(r.doc, id)
		return false, err
	}
	return true, nil
}

// Account returns the record for id.
func (r *FileRepository) Account(_ context.Context, id string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.doc[id]
	if !exists {
		return Account{}, ErrUnknownAccount
	}
	return account, nil
}

// Accounts returns a copy of the full ledger document.
func (r *FileRepository) Accounts(_ context.Context) (map[string]Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]Account, len(r.doc))
	for id, account := range r.doc {
		snapshot[id] = account
	}
	return snapshot, nil
}

// UpdateAccount applies mutate to the record for id and persists the document.
func (r *FileRepository) UpdateAccount(_ context.Context, id string, mutate func(*Account) error) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.doc[id]
	if !exists {
		return Account{}, ErrUnknownAccount
	}

	// Mutate a deep copy so a failed mutation never leaks into the document.
	account := prev
	account.Inventory = append([]Item(nil), prev.Inventory...)
	if err := mutate(&account); err != nil {
		return Account{}, err
	}
	if len(account.Inventory) == 0 {
		account.Inventory = nil
	}

	r.doc[id] = account
	if err := r.flushLocked(); err != nil {
		r.doc[id] = prev
		return Account{}, err
	}
	return account, nil
}

// Transfer moves amount between two accounts under one lock and one flush.
func (r *FileRepository) Transfer(_ context.Context, from, to string, amount int64) (int64, int64, error) {
	if amount < 0 {
		return 0, 0, ErrInvalidAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prevFrom, exists := r.doc[from]
	if !exists {
		return 0, 0, ErrUnknownAccount
	}
	prevTo, exists := r.doc[to]
	if !exists {
		return 0, 0, ErrUnknownAccount
	}
	if prevFrom.Wallet < amount {
		return 0, 0, ErrInsufficientFunds
	}

	// Apply both legs through the document so a transfer to the same
	// account nets to zero instead of crediting a stale copy.
	fromAccount := prevFrom
	fromAccount.Wallet -= amount
	r.doc[from] = fromAccount
	toAccount := r.doc[to]
	toAccount.Wallet += amount
	r.doc[to] = toAccount

	if err := r.flushLocked(); err != nil {
		r.doc[from] = prevFrom
		r.doc[to] = prevTo
		return 0, 0, err
	}
	return r.doc[from].Wallet, r.doc[to].Wallet, nil
}
