package models

import (
	"fmt"
	"time"
)

// InventoryItem is the unified read view of an item with its supplier and most
// recent shipment embedded. It is assembled from snapshots and never persisted.
type InventoryItem struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	StockAvailable int       `json:"stock_available"`
	StockSold      int       `json:"stock_sold"`
	Unit           string    `json:"unit"`
	Category       string    `json:"category"`
	Supplier       Supplier  `json:"supplier"`
	Shipment       *Shipment `json:"shipment,omitempty"`
	LastUpdated    time.Time `json:"last_updated"`
}

// BuildInventoryView joins items with their suppliers and latest shipments.
// Dangling references are resolved here, once: a missing supplier becomes a
// placeholder named "Supplier {id}", a missing shipment stays nil. Input
// slices are read-only snapshots and are not modified. Output order follows
// the item order.
func BuildInventoryView(items []Item, suppliers []Supplier, shipments []Shipment) []InventoryItem {
	suppliersByID := make(map[int]Supplier, len(suppliers))
	for _, s := range suppliers {
		suppliersByID[s.ID] = s
	}

	// Latest shipment per item; on equal dates the later row wins, matching
	// the order rows come back from the store.
	latest := make(map[int]*Shipment, len(shipments))
	for i := range shipments {
		sh := shipments[i]
		cur, ok := latest[sh.ItemID]
		if !ok || sh.ShipmentDate >= cur.ShipmentDate {
			latest[sh.ItemID] = &sh
		}
	}

	view := make([]InventoryItem, 0, len(items))
	for _, it := range items {
		supplier, ok := suppliersByID[it.SupplierID]
		if !ok {
			supplier = Supplier{ID: it.SupplierID, Name: fmt.Sprintf("Supplier %d", it.SupplierID)}
		}
		view = append(view, InventoryItem{
			ID:             it.ID,
			Name:           it.Name,
			StockAvailable: it.Quantity,
			StockSold:      it.StockSold,
			Unit:           it.Unit,
			Category:       it.Category,
			Supplier:       supplier,
			Shipment:       latest[it.ID],
			LastUpdated:    it.LastUpdated,
		})
	}
	return view
}
