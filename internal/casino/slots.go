// Package casino implements the slot-machine gambles.
package casino

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/stonk-bot/stonk_bot/internal/bank"
)

// Symbols is the fixed reel symbol set, drawn uniformly per reel.
var Symbols = [6]string{"bus", "train", "horse", "tiger", "monkey", "cow"}

// Payout multipliers applied to the wager.
const (
	tripleMultiplier = 4
	pairMultiplier   = 2
)

// Service runs slot gambles against ledger wallets.
type Service struct {
	banks *bank.Service

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService builds a casino service. A nil rng falls back to a time-seeded
// source; tests inject a fixed seed for reproducibility.
func NewService(banks *bank.Service, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{banks: banks, rng: rng}
}

// SpinResult describes one slot spin.
type SpinResult struct {
	Reels   [3]string
	Wager   int64
	Payout  int64 // net wallet delta: +4x, +2x, or -1x the wager
	Won     bool
	Balance int64
}

// Slots wagers amount on a three-reel spin. Negative amounts are
// bank.ErrInvalidAmount; wagers over the balance are bank.ErrInsufficientFunds.
func (s *Service) Slots(ctx context.Context, id string, amount int64) (SpinResult, error) {
	if amount < 0 {
		return SpinResult{}, bank.ErrInvalidAmount
	}
	balance, err := s.banks.Balance(ctx, id)
	if err != nil {
		return SpinResult{}, err
	}
	if amount > balance {
		return SpinResult{}, bank.ErrInsufficientFunds
	}

	s.rngMu.Lock()
	reels := [3]string{
		Symbols[s.rng.Intn(len(Symbols))],
		Symbols[s.rng.Intn(len(Symbols))],
		Symbols[s.rng.Intn(len(Symbols))],
	}
	s.rngMu.Unlock()

	payout := Payout(reels, amount)
	newBalance, err := s.banks.Adjust(ctx, id, payout)
	if err != nil {
		return SpinResult{}, err
	}

	return SpinResult{
		Reels:   reels,
		Wager:   amount,
		Payout:  payout,
		Won:     payout > 0,
		Balance: newBalance,
	}, nil
}

// AllIn wagers the entire wallet on a single spin.
func (s *Service) AllIn(ctx context.Context, id string) (SpinResult, error) {
	balance, err := s.banks.Balance(ctx, id)
	if err != nil {
		return SpinResult{}, err
	}
	return s.Slots(ctx, id, balance)
}

// Payout returns the net wallet delta for a spin: three of a kind pays 4x,
// exactly two of a kind pays 2x, all distinct loses the wager.
func Payout(reels [3]string, wager int64) int64 {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		return tripleMultiplier * wager
	case reels[0] == reels[1] || reels[0] == reels[2] || reels[1] == reels[2]:
		return pairMultiplier * wager
	default:
		return -wager
	}
}
