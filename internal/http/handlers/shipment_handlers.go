package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
)

// CreateShipmentHandler godoc
// @Summary Record a new shipment
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body ShipmentRequest true "Shipment to add"
// @Success 201 {object} models.Shipment
// @Failure 400 {array} ValidationError
// @Router /api/shipments [post]
func CreateShipmentHandler(w http.ResponseWriter, r *http.Request) {
	var req ShipmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateShipment(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	shipment := models.Shipment{
		ItemID:         req.ItemID,
		SupplierID:     req.SupplierID,
		ShipmentDate:   req.ShipmentDate,
		Status:         req.Status,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
	}
	created, err := shipmentRepo.Create(shipment)
	if err != nil {
		http.Error(w, "could not create shipment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetShipmentsHandler godoc
// @Summary List all shipments
// @Tags shipments
// @Produce json
// @Success 200 {array} models.Shipment
// @Failure 500 {string} string "Internal error"
// @Router /api/shipments [get]
func GetShipmentsHandler(w http.ResponseWriter, r *http.Request) {
	shipments, err := shipmentRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch shipments", http.StatusInternalServerError)
		return
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}
	writeJSON(w, http.StatusOK, shipments)
}

// GetShipmentByIDHandler godoc
// @Summary Get shipment by ID
// @Tags shipments
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} models.Shipment
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/shipments/{id} [get]
func GetShipmentByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid shipment ID", http.StatusBadRequest)
		return
	}

	shipment, err := shipmentRepo.GetByID(id)
	if err != nil {
		if err == repo.ErrShipmentNotFound {
			http.Error(w, "shipment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch shipment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}
