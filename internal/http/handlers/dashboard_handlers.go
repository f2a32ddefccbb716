package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/stats"
)

const summaryCacheKey = "dashboard:summary"

// GetDashboardSummaryHandler godoc
// @Summary Aggregated dashboard statistics
// @Description Totals, low-stock and pending counts, stock efficiency and the most recently updated items
// @Tags dashboard
// @Produce json
// @Success 200 {object} stats.Summary
// @Router /api/dashboard/summary [get]
func GetDashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetJSON(summaryCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	suppliers, items, shipments := fetchSnapshot()
	summary := stats.BuildSummary(suppliers, items, shipments)
	if summary.RecentItems == nil {
		summary.RecentItems = []models.Item{}
	}

	data, err := json.Marshal(summary)
	if err != nil {
		http.Error(w, "could not build summary", http.StatusInternalServerError)
		return
	}
	cache.SetJSON(summaryCacheKey, data, summaryTTL)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
