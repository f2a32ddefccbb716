package handlers

import "github.com/rogerio-castellano/logistics-dashboard/internal/models"

type SupplierRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type ItemRequest struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Unit       string `json:"unit"`
	Category   string `json:"category"`
	SupplierID int    `json:"supplier_id"`
}

type ShipmentRequest struct {
	ItemID         int    `json:"item_id"`
	SupplierID     int    `json:"supplier_id"`
	ShipmentDate   string `json:"shipment_date"`
	Status         string `json:"status"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // positive restocks, negative records a sale
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ShipmentsSearchResult struct {
	Data []models.Shipment `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

// InventorySearchResult is the envelope for inventory searches. Err is set
// when the remote search service failed, so an empty Data can be told apart
// from a zero-match search.
type InventorySearchResult struct {
	Data []models.InventoryItem `json:"data"`
	Err  string                 `json:"error,omitempty"`
}

type SearchFilters struct {
	Categories []string `json:"categories"`
	Suppliers  []string `json:"suppliers"`
	Statuses   []string `json:"statuses"`
}

type ImportItemsResult struct {
	ImportedItemsCount int               `json:"imported"`
	Errors             []ValidationError `json:"errors"`
}
