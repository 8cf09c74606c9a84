package shop

import "strings"

// sellRate is the fraction of the catalog price credited when selling back.
const sellRate = 0.7

// CatalogItem is one purchasable item with its fixed price.
type CatalogItem struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

var mainCatalog = []CatalogItem{
	{Name: "Jar of Mayo", Price: 100, Description: "Yes, mayo."},
	{Name: "Bananas", Price: 100, Description: "Yummy"},
	{Name: "Diamond", Price: 10000, Description: "shiny"},
	{Name: "Lambo", Price: 99999, Description: "Lambo go VRRRROOM"},
}

// Catalog returns the fixed in-memory catalog.
func Catalog() []CatalogItem {
	items := make([]CatalogItem, len(mainCatalog))
	copy(items, mainCatalog)
	return items
}

func lookup(name string) (CatalogItem, bool) {
	for _, item := range mainCatalog {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return CatalogItem{}, false
}
