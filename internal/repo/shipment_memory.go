package repo

import (
	"sort"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

// InMemoryShipmentRepository is an in-memory implementation of ShipmentRepository.
type InMemoryShipmentRepository struct {
	shipments []models.Shipment
	nextID    int
}

// NewInMemoryShipmentRepository creates a new instance of InMemoryShipmentRepository.
func NewInMemoryShipmentRepository() *InMemoryShipmentRepository {
	return &InMemoryShipmentRepository{
		shipments: []models.Shipment{},
		nextID:    1,
	}
}

// Create adds a new shipment to the repository.
func (r *InMemoryShipmentRepository) Create(shipment models.Shipment) (models.Shipment, error) {
	shipment.ID = r.nextID
	r.nextID++
	r.shipments = append(r.shipments, shipment)
	return shipment, nil
}

// GetAll retrieves all shipments from the repository.
func (r *InMemoryShipmentRepository) GetAll() ([]models.Shipment, error) {
	return r.shipments, nil
}

// GetByID retrieves a shipment by its ID.
func (r *InMemoryShipmentRepository) GetByID(id int) (models.Shipment, error) {
	for _, s := range r.shipments {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Shipment{}, ErrShipmentNotFound
}

func matchesShipmentFilter(s models.Shipment, itemID int, sf ShipmentFilter) bool {
	if s.ItemID != itemID {
		return false
	}
	if sf.Since != nil && s.ShipmentDate < *sf.Since {
		return false
	}
	if sf.Until != nil && s.ShipmentDate > *sf.Until {
		return false
	}
	return true
}

// GetByItemID returns the shipments of one item, newest first, with the total
// match count before pagination.
func (r *InMemoryShipmentRepository) GetByItemID(itemID int, sf ShipmentFilter) ([]models.Shipment, int, error) {
	var filtered []models.Shipment
	for _, s := range r.shipments {
		if matchesShipmentFilter(s, itemID, sf) {
			filtered = append(filtered, s)
		}
	}

	// ISO dates sort lexicographically; newest first for history views.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ShipmentDate > filtered[j].ShipmentDate
	})

	total := len(filtered)
	start := 0
	if sf.Offset != nil {
		start = clamp(*sf.Offset, 0, total)
	}
	end := total
	if sf.Limit != nil && *sf.Limit > 0 {
		end = clamp(start+*sf.Limit, start, total)
	}
	return filtered[start:end], total, nil
}

func (r *InMemoryShipmentRepository) Clear() {
	r.shipments = []models.Shipment{}
	r.nextID = 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
