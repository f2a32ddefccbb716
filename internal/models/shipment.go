package models

// Shipment statuses. The set is closed on the write path; readers must
// tolerate values outside it.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// ShipmentStatuses lists the accepted statuses in display order.
var ShipmentStatuses = []string{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled}

// Shipment represents a shipment of an item from a supplier.
// ShipmentDate is an ISO date string (YYYY-MM-DD) as it travels on the wire.
type Shipment struct {
	ID             int    `json:"id"`
	ItemID         int    `json:"item_id"`
	SupplierID     int    `json:"supplier_id"`
	ShipmentDate   string `json:"shipment_date"`
	Status         string `json:"status"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`

	// Joined display fields.
	ItemName     string `json:"item_name,omitempty"`
	SupplierName string `json:"supplier_name,omitempty"`
}

// ValidStatus reports whether s is one of the accepted shipment statuses.
func ValidStatus(s string) bool {
	for _, known := range ShipmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PendingLike reports whether the status counts as still underway.
func PendingLike(status string) bool {
	return status == StatusPending || status == StatusInTransit
}
