package repo

import "github.com/rogerio-castellano/logistics-dashboard/internal/models"

// ShipmentFilter narrows shipment history queries. Dates compare against the
// shipment date (YYYY-MM-DD); nil fields are no-ops.
type ShipmentFilter struct {
	Since  *string
	Until  *string
	Offset *int
	Limit  *int
}

// ShipmentRepository defines the interface for shipment data operations.
type ShipmentRepository interface {
	Create(shipment models.Shipment) (models.Shipment, error)
	GetAll() ([]models.Shipment, error)
	GetByID(id int) (models.Shipment, error)
	GetByItemID(itemID int, sf ShipmentFilter) ([]models.Shipment, int, error)
}
