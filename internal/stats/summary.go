package stats

import (
	"time"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

// Summary carries the aggregated figures shown on the dashboard cards.
type Summary struct {
	TotalSuppliers   int           `json:"total_suppliers"`
	TotalItems       int           `json:"total_items"`
	TotalQuantity    int           `json:"total_quantity"`
	TotalSold        int           `json:"total_sold"`
	LowStockItems    int           `json:"low_stock_items"`
	TotalShipments   int           `json:"total_shipments"`
	PendingShipments int           `json:"pending_shipments"`
	StockEfficiency  int           `json:"stock_efficiency"`
	RecentItems      []models.Item `json:"recent_items"`
}

// recentItemCount is how many recently updated items the dashboard lists.
const recentItemCount = 5

// BuildSummary reduces fresh entity snapshots into the dashboard summary.
// Empty snapshots produce an all-zero summary.
func BuildSummary(suppliers []models.Supplier, items []models.Item, shipments []models.Shipment) Summary {
	totalQuantity := Sum(items, func(i models.Item) int { return i.Quantity })
	totalSold := Sum(items, func(i models.Item) int { return i.StockSold })

	return Summary{
		TotalSuppliers:   len(suppliers),
		TotalItems:       len(items),
		TotalQuantity:    totalQuantity,
		TotalSold:        totalSold,
		LowStockItems:    CountWhere(items, models.Item.LowStock),
		TotalShipments:   len(shipments),
		PendingShipments: CountWhere(shipments, func(s models.Shipment) bool { return models.PendingLike(s.Status) }),
		StockEfficiency:  Ratio(totalSold, totalQuantity),
		RecentItems:      MostRecent(items, func(i models.Item) time.Time { return i.LastUpdated }, recentItemCount),
	}
}
