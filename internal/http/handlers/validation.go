package handlers

import (
	"strings"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateSupplier(s SupplierRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateItem(i ItemRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if i.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if i.SupplierID <= 0 {
		errs = append(errs, ValidationError{Field: "SupplierID", Description: "Supplier is required"})
	}
	return errs
}

func validateShipment(s ShipmentRequest) []ValidationError {
	errs := []ValidationError{}
	if s.ItemID <= 0 {
		errs = append(errs, ValidationError{Field: "ItemID", Description: "Item is required"})
	}
	if s.SupplierID <= 0 {
		errs = append(errs, ValidationError{Field: "SupplierID", Description: "Supplier is required"})
	}
	if strings.TrimSpace(s.ShipmentDate) == "" {
		errs = append(errs, ValidationError{Field: "ShipmentDate", Description: "Shipment date is required"})
	}
	if !models.ValidStatus(s.Status) {
		errs = append(errs, ValidationError{Field: "Status", Description: "Status must be one of: " + strings.Join(models.ShipmentStatuses, ", ")})
	}
	return errs
}
