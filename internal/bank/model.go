package bank

import "strings"

// Item is one inventory line. Names are unique within an account's inventory.
type Item struct {
	Name     string `json:"item"`
	Quantity int64  `json:"amount"`
}

// Account is the per-user record stored in the ledger document. Inventory is
// omitted from the persisted form until the first purchase, matching the
// historical file layout.
type Account struct {
	Wallet    int64  `json:"wallet"`
	Inventory []Item `json:"inventory,omitempty"`
}

// InventoryLine returns the index of the line holding name, or -1.
// Lookup is case-insensitive because item names arrive from chat input.
func (a Account) InventoryLine(name string) int {
	for i, item := range a.Inventory {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}
