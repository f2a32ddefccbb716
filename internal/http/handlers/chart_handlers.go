package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/logistics-dashboard/internal/chart"
	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/stats"
)

// ItemsByCategoryChartHandler godoc
// @Summary Bar chart of item quantities per category
// @Tags charts
// @Produce image/svg+xml
// @Success 200 {string} string "SVG document"
// @Router /api/charts/items-by-category.svg [get]
func ItemsByCategoryChartHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	grouped := stats.GroupSum(items,
		func(i models.Item) string { return i.Category },
		func(i models.Item) int { return i.Quantity },
	)

	w.Header().Set("Content-Type", "image/svg+xml")
	chart.ItemsByCategory(w, grouped)
}

// StockDistributionChartHandler godoc
// @Summary Bar chart of available vs sold stock per category
// @Tags charts
// @Produce image/svg+xml
// @Success 200 {string} string "SVG document"
// @Router /api/charts/stock-distribution.svg [get]
func StockDistributionChartHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	grouped := stats.GroupSum(items,
		func(i models.Item) string { return i.Category },
		func(i models.Item) int { return i.Quantity },
		func(i models.Item) int { return i.StockSold },
	)

	w.Header().Set("Content-Type", "image/svg+xml")
	chart.StockDistribution(w, grouped)
}
