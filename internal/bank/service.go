package bank

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stonk-bot/stonk_bot/internal/notification"
	"github.com/stonk-bot/stonk_bot/internal/rank"
)

// Beg rewards are uniform in [0, maxBegReward].
const maxBegReward = 100

// Service exposes account lifecycle and transaction operations backed by the
// ledger document.
type Service struct {
	repo     Repository
	notifier notification.Notifier

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService builds a bank service. A nil rng falls back to a time-seeded
// source; tests inject a fixed seed for reproducibility.
func NewService(repo Repository, notifier notification.Notifier, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{repo: repo, notifier: notifier, rng: rng}
}

// EnsureAccount lazily creates a zero-balance account, reporting whether a
// record was created.
func (s *Service) EnsureAccount(ctx context.Context, id string) (bool, error) {
	return s.repo.EnsureAccount(ctx, id)
}

// Balance returns the wallet balance for id, creating the account if needed.
func (s *Service) Balance(ctx context.Context, id string) (int64, error) {
	if _, err := s.repo.EnsureAccount(ctx, id); err != nil {
		return 0, err
	}
	account, err := s.repo.Account(ctx, id)
	if err != nil {
		return 0, err
	}
	return account.Wallet, nil
}

// Adjust adds delta (possibly negative) to the wallet and returns the new
// balance. No lower bound is enforced here; callers validate affordability.
func (s *Service) Adjust(ctx context.Context, id string, delta int64) (int64, error) {
	if _, err := s.repo.EnsureAccount(ctx, id); err != nil {
		return 0, err
	}
	account, err := s.repo.UpdateAccount(ctx, id, func(a *Account) error {
		a.Wallet += delta
		return nil
	})
	if err != nil {
		return 0, err
	}
	return account.Wallet, nil
}

// TransferResult describes the outcome of a wallet-to-wallet transfer.
type TransferResult struct {
	TransactionID string
	Amount        int64
	FromBalance   int64
	ToBalance     int64
	CompletedAt   time.Time
}

// Transfer moves amount from one account to the other. Negative amounts are
// ErrInvalidAmount; amounts over the source balance are ErrInsufficientFunds.
func (s *Service) Transfer(ctx context.Context, from, to string, amount int64) (TransferResult, error) {
	if _, err := s.repo.EnsureAccount(ctx, from); err != nil {
		return TransferResult{}, err
	}
	if _, err := s.repo.EnsureAccount(ctx, to); err != nil {
		return TransferResult{}, err
	}

	fromBalance, toBalance, err := s.repo.Transfer(ctx, from, to, amount)
	if err != nil {
		return TransferResult{}, err
	}

	result := TransferResult{
		TransactionID: uuid.NewString(),
		Amount:        amount,
		FromBalance:   fromBalance,
		ToBalance:     toBalance,
		CompletedAt:   time.Now().UTC(),
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindTransfer,
			Destination: to,
			Title:       "Transfer received",
			Body:        fmt.Sprintf("%s sent you %d coins", from, amount),
			Fields: map[string]string{
				"from":   from,
				"amount": fmt.Sprintf("%d", amount),
			},
		})
	}

	return result, nil
}

// BegResult describes a beg payout.
type BegResult struct {
	Earnings int64
	Balance  int64
}

// Beg grants a uniform random reward. The per-account cooldown is enforced
// upstream by the dispatch layer; Beg assumes it has already passed.
func (s *Service) Beg(ctx context.Context, id string) (BegResult, error) {
	s.rngMu.Lock()
	earnings := int64(s.rng.Intn(maxBegReward + 1))
	s.rngMu.Unlock()

	balance, err := s.Adjust(ctx, id, earnings)
	if err != nil {
		return BegResult{}, err
	}
	return BegResult{Earnings: earnings, Balance: balance}, nil
}

// Richest returns the top-n accounts by wallet balance.
func (s *Service) Richest(ctx context.Context, n int) ([]rank.Entry, error) {
	accounts, err := s.repo.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]rank.Entry, 0, len(accounts))
	for id, account := range accounts {
		entries = append(entries, rank.Entry{ID: id, Score: account.Wallet})
	}
	return rank.Top(entries, n), nil
}
