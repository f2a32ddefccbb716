package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
)

// CreateSupplierHandler godoc
// @Summary Create a new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body SupplierRequest true "Supplier to add"
// @Success 201 {object} models.Supplier
// @Failure 400 {array} ValidationError
// @Router /api/suppliers [post]
func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSupplier(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	supplier := models.Supplier{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
	}
	created, err := supplierRepo.Create(supplier)
	if err != nil {
		http.Error(w, "could not create supplier", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetSuppliersHandler godoc
// @Summary List all suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} models.Supplier
// @Failure 500 {string} string "Internal error"
// @Router /api/suppliers [get]
func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch suppliers", http.StatusInternalServerError)
		return
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// GetSupplierByIDHandler godoc
// @Summary Get supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} models.Supplier
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/suppliers/{id} [get]
func GetSupplierByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	supplier, err := supplierRepo.GetByID(id)
	if err != nil {
		if err == repo.ErrSupplierNotFound {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch supplier", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// DeleteSupplierHandler godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Param id path int true "Supplier ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/suppliers/{id} [delete]
func DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}
	if err := supplierRepo.Delete(id); err != nil {
		if err == repo.ErrSupplierNotFound {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete supplier", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
