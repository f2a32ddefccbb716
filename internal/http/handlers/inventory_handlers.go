package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/search"
)

// GetInventoryHandler godoc
// @Summary Unified inventory view
// @Description Items joined with their supplier and most recent shipment
// @Tags inventory
// @Produce json
// @Success 200 {array} models.InventoryItem
// @Router /api/inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, items, shipments := fetchSnapshot()
	writeJSON(w, http.StatusOK, models.BuildInventoryView(items, suppliers, shipments))
}

// SearchInventoryHandler godoc
// @Summary Search the inventory view
// @Description Filters the unified inventory, locally or through the remote search service when one is configured
// @Tags inventory
// @Produce json
// @Param item_name query string false "Item name or ID"
// @Param category query string false "Category"
// @Param supplier_name query string false "Supplier name"
// @Param status query string false "Shipment status"
// @Success 200 {object} InventorySearchResult
// @Failure 502 {object} InventorySearchResult
// @Router /api/inventory/search [get]
func SearchInventoryHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := search.Criteria{
		Text:     q.Get("item_name"),
		Category: q.Get("category"),
		Supplier: q.Get("supplier_name"),
		Status:   q.Get("status"),
	}

	if remoteSearch != nil {
		items, err := remoteSearch.Search(r.Context(), criteria)
		if err != nil {
			// An explicit failure state with an empty result set; never
			// stale or partial data.
			log.Errorw("remote search failed", "error", err)
			writeJSON(w, http.StatusBadGateway, InventorySearchResult{
				Data: []models.InventoryItem{},
				Err:  "search service unavailable",
			})
			return
		}
		if items == nil {
			items = []models.InventoryItem{}
		}
		writeJSON(w, http.StatusOK, InventorySearchResult{Data: items})
		return
	}

	suppliers, items, shipments := fetchSnapshot()
	view := models.BuildInventoryView(items, suppliers, shipments)
	writeJSON(w, http.StatusOK, InventorySearchResult{Data: search.FilterInventory(view, criteria)})
}

// ExportInventoryHandler godoc
// @Summary Export the inventory view as CSV
// @Tags inventory
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Router /api/inventory/export [get]
func ExportInventoryHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, items, shipments := fetchSnapshot()
	view := models.BuildInventoryView(items, suppliers, shipments)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"id", "name", "stock_available", "stock_sold", "unit", "category", "supplier", "shipment_status", "last_updated"})
	for _, it := range view {
		status := "-"
		if it.Shipment != nil {
			status = it.Shipment.Status
		}
		cw.Write([]string{
			strconv.Itoa(it.ID),
			it.Name,
			strconv.Itoa(it.StockAvailable),
			strconv.Itoa(it.StockSold),
			it.Unit,
			it.Category,
			it.Supplier.Name,
			status,
			it.LastUpdated.Format("2006-01-02 15:04:05"),
		})
	}
}
