package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/logistics-dashboard/internal/alert"
	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
)

// CreateItemHandler godoc
// @Summary Create a new logistics item
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} models.Item
// @Failure 400 {array} ValidationError
// @Router /api/items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	item := models.Item{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Category:    req.Category,
		SupplierID:  req.SupplierID,
		LastUpdated: time.Now().UTC(),
	}
	created, err := itemRepo.Create(item)
	if err != nil {
		if err == repo.ErrDuplicatedValueUnique {
			http.Error(w, "could not create item: item name duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetItemsHandler godoc
// @Summary List all items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {string} string "Internal error"
// @Router /api/items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GetItemByIDHandler godoc
// @Summary Get item by ID
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := itemRepo.GetByID(id)
	if err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateItemHandler godoc
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Updated item"
// @Success 200 {object} models.Item
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /api/items/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	item := models.Item{
		ID:         id,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	}
	updated, err := itemRepo.Update(item)
	if err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Tags items
// @Param id path int true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}
	if err := itemRepo.Delete(id); err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustStockHandler godoc
// @Summary Adjust available stock of an item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param adjustment body StockAdjustmentRequest true "Stock change"
// @Success 200 {object} models.Item
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 409 {string} string "Stock would become negative"
// @Router /api/items/{id}/adjust [post]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req StockAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	item, err := itemRepo.AdjustStock(id, req.Delta)
	if err != nil {
		if err == repo.ErrInvalidStockChange {
			http.Error(w, "stock cannot become negative", http.StatusConflict)
			return
		}
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not adjust stock", http.StatusInternalServerError)
		return
	}

	if item.LowStock() {
		log.Warnw("item below low-stock threshold", "item_id", item.ID, "name", item.Name, "quantity", item.Quantity)
		alert.SendLowStockAlert(item)
	}

	writeJSON(w, http.StatusOK, item)
}

// GetItemShipmentsHandler godoc
// @Summary Get the shipment history of an item
// @Tags shipments
// @Produce json
// @Param id path int true "Item ID"
// @Param since query string false "Earliest shipment date (YYYY-MM-DD)"
// @Param until query string false "Latest shipment date (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ShipmentsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Item not found"
// @Router /api/items/{id}/shipments [get]
func GetItemShipmentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	if _, err := itemRepo.GetByID(id); err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filter := repo.ShipmentFilter{
		Offset: parseIntPtr(q.Get("offset")),
		Limit:  parseIntPtr(q.Get("limit")),
	}
	if since := q.Get("since"); since != "" {
		filter.Since = &since
	}
	if until := q.Get("until"); until != "" {
		filter.Until = &until
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	shipments, total, err := shipmentRepo.GetByItemID(id, filter)
	if err != nil {
		http.Error(w, "could not fetch shipments", http.StatusInternalServerError)
		return
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}

	writeJSON(w, http.StatusOK, ShipmentsSearchResult{
		Data: shipments,
		Meta: Meta{TotalCount: total},
	})
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
