package models

import "time"

// LowStockThreshold is the stock level below which an item counts as low stock.
const LowStockThreshold = 10

// Item represents a logistics item. Quantity is the stock currently available;
// StockSold accumulates units sold to date.
type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	SupplierID  int       `json:"supplier_id"`
	StockSold   int       `json:"stock_sold"`
	LastUpdated time.Time `json:"last_updated"`

	// SupplierName is a display-only copy of the owning supplier's name,
	// filled by joined queries. Empty when the join did not resolve.
	SupplierName string `json:"supplier_name,omitempty"`
}

// LowStock reports whether the item is below the low-stock threshold.
func (i Item) LowStock() bool {
	return i.Quantity < LowStockThreshold
}
