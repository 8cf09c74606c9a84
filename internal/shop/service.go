package shop

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stonk-bot/stonk_bot/internal/bank"
)

var (
	// ErrItemNotFound indicates the item has no catalog entry.
	ErrItemNotFound = errors.New("item not in catalog")

	// ErrItemNotHeld indicates the account holds no inventory line for the item.
	ErrItemNotHeld = errors.New("item not in inventory")

	// ErrInsufficientQuantity indicates the account holds fewer units than
	// the sale requests.
	ErrInsufficientQuantity = errors.New("insufficient quantity held")

	// ErrInvalidQuantity indicates a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Service performs catalog purchases and sales against ledger accounts.
type Service struct {
	repo bank.Repository
}

// NewService builds a shop service over the ledger repository.
func NewService(repo bank.Repository) *Service {
	return &Service{repo: repo}
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	Item     string
	Quantity int64
	Cost     int64
	Balance  int64
}

// Buy debits quantity*price and increments (or creates) the inventory line.
// The wallet debit and the inventory change land in one persisted write.
func (s *Service) Buy(ctx context.Context, id, itemName string, quantity int64) (PurchaseResult, error) {
	if quantity < 1 {
		return PurchaseResult{}, ErrInvalidQuantity
	}
	item, ok := lookup(itemName)
	if !ok {
		return PurchaseResult{}, ErrItemNotFound
	}
	cost := item.Price * quantity

	if _, err := s.repo.EnsureAccount(ctx, id); err != nil {
		return PurchaseResult{}, err
	}

	account, err := s.repo.UpdateAccount(ctx, id, func(a *bank.Account) error {
		if a.Wallet < cost {
			return bank.ErrInsufficientFunds
		}
		a.Wallet -= cost
		if i := a.InventoryLine(item.Name); i >= 0 {
			a.Inventory[i].Quantity += quantity
		} else {
			a.Inventory = append(a.Inventory, bank.Item{Name: strings.ToLower(item.Name), Quantity: quantity})
		}
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	return PurchaseResult{Item: item.Name, Quantity: quantity, Cost: cost, Balance: account.Wallet}, nil
}

// SaleResult describes a completed sale.
type SaleResult struct {
	Item     string
	Quantity int64
	Proceeds int64
	Balance  int64
}

// Sell decrements the inventory line and credits quantity*(0.7*price),
// truncated to whole coins. A line sold down to zero is removed. Held
// quantity never goes negative.
func (s *Service) Sell(ctx context.Context, id, itemName string, quantity int64) (SaleResult, error) {
	if quantity < 1 {
		return SaleResult{}, ErrInvalidQuantity
	}
	item, ok := lookup(itemName)
	if !ok {
		return SaleResult{}, ErrItemNotFound
	}
	proceeds := SellValue(item.Price, quantity)

	if _, err := s.repo.EnsureAccount(ctx, id); err != nil {
		return SaleResult{}, err
	}

	account, err := s.repo.UpdateAccount(ctx, id, func(a *bank.Account) error {
		i := a.InventoryLine(item.Name)
		if i < 0 {
			return ErrItemNotHeld
		}
		if a.Inventory[i].Quantity < quantity {
			return ErrInsufficientQuantity
		}
		a.Inventory[i].Quantity -= quantity
		if a.Inventory[i].Quantity == 0 {
			a.Inventory = append(a.Inventory[:i], a.Inventory[i+1:]...)
		}
		a.Wallet += proceeds
		return nil
	})
	if err != nil {
		return SaleResult{}, err
	}

	return SaleResult{Item: item.Name, Quantity: quantity, Proceeds: proceeds, Balance: account.Wallet}, nil
}

// Inventory returns the account's inventory lines.
func (s *Service) Inventory(ctx context.Context, id string) ([]bank.Item, error) {
	if _, err := s.repo.EnsureAccount(ctx, id); err != nil {
		return nil, err
	}
	account, err := s.repo.Account(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.Inventory, nil
}

// SellValue computes the sale proceeds for quantity units at the buy-back
// rate, truncated to whole coins.
func SellValue(price, quantity int64) int64 {
	return decimal.NewFromInt(price).
		Mul(decimal.NewFromFloat(sellRate)).
		Mul(decimal.NewFromInt(quantity)).
		IntPart()
}
