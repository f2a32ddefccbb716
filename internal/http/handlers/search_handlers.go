package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/search"
)

// SearchAcrossEntitiesHandler godoc
// @Summary Search suppliers, items and shipments
// @Description Matches the search text within each selected collection; collections outside the selected entity type come back empty
// @Tags search
// @Produce json
// @Param search query string false "Search text"
// @Param entity query string false "Entity type (suppliers|items|shipments|all)" default(all)
// @Success 200 {object} search.Results
// @Router /api/search [get]
func SearchAcrossEntitiesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := q.Get("search")
	entity := q.Get("entity")
	if entity == "" {
		entity = search.EntityAll
	}

	suppliers, items, shipments := fetchSnapshot()
	writeJSON(w, http.StatusOK, search.AcrossEntities(suppliers, items, shipments, text, entity))
}

// GetSearchFiltersHandler godoc
// @Summary Distinct filter values for the search page dropdowns
// @Tags search
// @Produce json
// @Success 200 {object} SearchFilters
// @Router /api/search/filters [get]
func GetSearchFiltersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, items, shipments := fetchSnapshot()

	filters := SearchFilters{
		Categories: search.Distinct(items, func(i models.Item) string { return i.Category }),
		Suppliers:  search.Distinct(suppliers, func(s models.Supplier) string { return s.Name }),
		Statuses:   search.Distinct(shipments, func(s models.Shipment) string { return s.Status }),
	}
	if filters.Categories == nil {
		filters.Categories = []string{}
	}
	if filters.Suppliers == nil {
		filters.Suppliers = []string{}
	}
	if filters.Statuses == nil {
		filters.Statuses = []string{}
	}
	writeJSON(w, http.StatusOK, filters)
}
