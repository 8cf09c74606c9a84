package bank

import (
	"context"
	"errors"
)

var (
	// ErrInsufficientFunds occurs when an account lacks the balance to cover
	// a requested debit.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount indicates a negative amount was supplied.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnknownAccount indicates the account id has no record. Public
	// operations ensure accounts before reading, so this should only surface
	// on internal misuse.
	ErrUnknownAccount = errors.New("unknown account")
)

// Repository is the contract implemented by ledger document backends. All
// mutations operate on a single authoritative document guarded by the
// implementation, so two legs of a transfer never interleave with other
// writes.
type Repository interface {
	// EnsureAccount lazily creates a zero-balance record for id. It reports
	// whether a record was created.
	EnsureAccount(ctx context.Context, id string) (bool, error)

	// Account returns the record for id.
	Account(ctx context.Context, id string) (Account, error)

	// Accounts returns a snapshot of the full ledger document.
	Accounts(ctx context.Context) (map[string]Account, error)

	// UpdateAccount applies mutate to the record for id and persists the
	// document. If mutate returns an error the document is left untouched.
	UpdateAccount(ctx context.Context, id string, mutate func(*Account) error) (Account, error)

	// Transfer moves amount from one account to another in a single
	// persisted write, returning both post-transfer balances.
	Transfer(ctx context.Context, from, to string, amount int64) (fromBalance, toBalance int64, err error)
}
