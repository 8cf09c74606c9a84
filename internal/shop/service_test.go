package shop

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stonk-bot/stonk_bot/internal/bank"
)

func newTestShop(t *testing.T) (*Service, *bank.FileRepository) {
	t.Helper()
	repo, err := bank.OpenFileRepository(filepath.Join(t.TempDir(), "bank.json"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	return NewService(repo), repo
}

func fund(t *testing.T, repo *bank.FileRepository, id string, amount int64) {
	t.Helper()
	ctx := context.Background()
	if _, err := repo.EnsureAccount(ctx, id); err != nil {
		t.Fatalf("ensure %s: %v", id, err)
	}
	if _, err := repo.UpdateAccount(ctx, id, func(a *bank.Account) error {
		a.Wallet += amount
		return nil
	}); err != nil {
		t.Fatalf("fund %s: %v", id, err)
	}
}

func TestBuyDebitsAndStocksInventory(t *testing.T) {
	svc, repo := newTestShop(t)
	fund(t, repo, "alice", 500)
	ctx := context.Background()

	result, err := svc.Buy(ctx, "alice", "Bananas", 3)
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if result.Cost != 300 || result.Balance != 200 {
		t.Fatalf("expected cost 300 balance 200, got %d/%d", result.Cost, result.Balance)
	}

	inventory, err := svc.Inventory(ctx, "alice")
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(inventory) != 1 || inventory[0].Name != "bananas" || inventory[0].Quantity != 3 {
		t.Fatalf("unexpected inventory: %+v", inventory)
	}

	// A second purchase of the same item grows the existing line.
	if _, err := svc.Buy(ctx, "alice", "bananas", 2); err != nil {
		t.Fatalf("second buy: %v", err)
	}
	inventory, err = svc.Inventory(ctx, "alice")
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(inventory) != 1 || inventory[0].Quantity != 5 {
		t.Fatalf("expected one line of 5, got %+v", inventory)
	}
}

func TestBuyRejections(t *testing.T) {
	svc, repo := newTestShop(t)
	fund(t, repo, "alice", 50)
	ctx := context.Background()

	if _, err := svc.Buy(ctx, "alice", "rocket fuel", 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := svc.Buy(ctx, "alice", "Bananas", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.Buy(ctx, "alice", "Bananas", 1); !errors.Is(err, bank.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestSellRoundTrip(t *testing.T) {
	svc, repo := newTestShop(t)
	fund(t, repo, "alice", 1_000)
	ctx := context.Background()

	if _, err := svc.Buy(ctx, "alice", "Bananas", 4); err != nil {
		t.Fatalf("buy: %v", err)
	}
	result, err := svc.Sell(ctx, "alice", "Bananas", 4)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if result.Proceeds != 280 {
		t.Fatalf("expected proceeds 280, got %d", result.Proceeds)
	}
	// Round trip loses the 30% spread: 1000 - 400 + 280.
	if result.Balance != 880 {
		t.Fatalf("expected balance 880, got %d", result.Balance)
	}

	inventory, err := svc.Inventory(ctx, "alice")
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(inventory) != 0 {
		t.Fatalf("expected empty inventory after selling out, got %+v", inventory)
	}
}

func TestSellRejections(t *testing.T) {
	svc, repo := newTestShop(t)
	fund(t, repo, "alice", 500)
	ctx := context.Background()

	if _, err := svc.Sell(ctx, "alice", "Diamond", 1); !errors.Is(err, ErrItemNotHeld) {
		t.Fatalf("expected ErrItemNotHeld, got %v", err)
	}

	if _, err := svc.Buy(ctx, "alice", "Bananas", 2); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := svc.Sell(ctx, "alice", "Bananas", 3); !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}

	// The failed sale must not touch wallet or inventory.
	inventory, err := svc.Inventory(ctx, "alice")
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(inventory) != 1 || inventory[0].Quantity != 2 {
		t.Fatalf("failed sale mutated inventory: %+v", inventory)
	}
}

func TestSellValueTruncates(t *testing.T) {
	cases := []struct {
		price, quantity, want int64
	}{
		{100, 1, 70},
		{100, 3, 210},
		{10_000, 1, 7_000},
		{99_999, 1, 69_999},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := SellValue(tc.price, tc.quantity); got != tc.want {
			t.Fatalf("SellValue(%d, %d) = %d, want %d", tc.price, tc.quantity, got, tc.want)
		}
	}
}

func TestCatalogLookupIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"jar of mayo", "JAR OF MAYO", "Jar of Mayo"} {
		item, ok := lookup(name)
		if !ok {
			t.Fatalf("lookup(%q) missed", name)
		}
		if item.Price != 100 {
			t.Fatalf("expected price 100, got %d", item.Price)
		}
	}
}
