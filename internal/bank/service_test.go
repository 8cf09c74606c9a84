package bank

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
)

func newTestService(t *testing.T, seed int64) *Service {
	t.Helper()
	repo, err := OpenFileRepository(filepath.Join(t.TempDir(), "bank.json"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	return NewService(repo, nil, rand.New(rand.NewSource(seed)))
}

func TestBalanceCreatesAccount(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	balance, err := svc.Balance(ctx, "alice")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected new account balance 0, got %d", balance)
	}

	created, err := svc.EnsureAccount(ctx, "alice")
	if err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if created {
		t.Fatalf("expected account to already exist")
	}
}

func TestAdjustIsAdditive(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	if _, err := svc.Adjust(ctx, "alice", 500); err != nil {
		t.Fatalf("first adjust: %v", err)
	}
	balance, err := svc.Adjust(ctx, "alice", -120)
	if err != nil {
		t.Fatalf("second adjust: %v", err)
	}
	if balance != 380 {
		t.Fatalf("expected balance 380, got %d", balance)
	}
}

func TestTransferConservesCoins(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	if _, err := svc.Adjust(ctx, "alice", 1_000); err != nil {
		t.Fatalf("fund alice: %v", err)
	}

	result, err := svc.Transfer(ctx, "alice", "bob", 300)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if result.FromBalance != 700 || result.ToBalance != 300 {
		t.Fatalf("expected balances 700/300, got %d/%d", result.FromBalance, result.ToBalance)
	}
	if result.TransactionID == "" {
		t.Fatalf("expected a transaction id")
	}
}

func TestTransferToSelfNetsToZero(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	if _, err := svc.Adjust(ctx, "alice", 100); err != nil {
		t.Fatalf("fund alice: %v", err)
	}

	result, err := svc.Transfer(ctx, "alice", "alice", 100)
	if err != nil {
		t.Fatalf("self transfer: %v", err)
	}
	if result.FromBalance != 100 || result.ToBalance != 100 {
		t.Fatalf("expected balances 100/100, got %d/%d", result.FromBalance, result.ToBalance)
	}

	balance, err := svc.Balance(ctx, "alice")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 100 {
		t.Fatalf("self transfer changed balance: got %d, want 100", balance)
	}

	// Still bound by the sender's wallet.
	if _, err := svc.Transfer(ctx, "alice", "alice", 101); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestTransferRejectsBadAmounts(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	if _, err := svc.Adjust(ctx, "alice", 100); err != nil {
		t.Fatalf("fund alice: %v", err)
	}

	if _, err := svc.Transfer(ctx, "alice", "bob", -1); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.Transfer(ctx, "alice", "bob", 101); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// Failed transfers leave both wallets untouched.
	balance, err := svc.Balance(ctx, "alice")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 100 {
		t.Fatalf("expected balance 100 after failed transfers, got %d", balance)
	}
}

func TestBegRewardWithinBounds(t *testing.T) {
	svc := newTestService(t, 42)
	ctx := context.Background()

	total := int64(0)
	for i := 0; i < 50; i++ {
		result, err := svc.Beg(ctx, "alice")
		if err != nil {
			t.Fatalf("beg %d: %v", i, err)
		}
		if result.Earnings < 0 || result.Earnings > maxBegReward {
			t.Fatalf("earnings %d outside [0, %d]", result.Earnings, maxBegReward)
		}
		total += result.Earnings
		if result.Balance != total {
			t.Fatalf("expected running balance %d, got %d", total, result.Balance)
		}
	}
}

func TestRichestOrdersByBalance(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	for id, amount := range map[string]int64{"alice": 50, "bob": 200, "carol": 125} {
		if _, err := svc.Adjust(ctx, id, amount); err != nil {
			t.Fatalf("fund %s: %v", id, err)
		}
	}

	top, err := svc.Richest(ctx, 2)
	if err != nil {
		t.Fatalf("richest: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].ID != "bob" || top[0].Score != 200 {
		t.Fatalf("expected bob/200 first, got %s/%d", top[0].ID, top[0].Score)
	}
	if top[1].ID != "carol" || top[1].Score != 125 {
		t.Fatalf("expected carol/125 second, got %s/%d", top[1].ID, top[1].Score)
	}
}
