// Package search computes filtered subsets of entity collections, either
// in memory or by delegating to a remote search service.
package search

import (
	"strconv"
	"strings"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

// Criteria is a set of optional filters. Empty fields are no-ops; present
// fields narrow the result with logical AND.
type Criteria struct {
	Text     string
	Category string
	Supplier string
	Status   string
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return c.Text == "" && c.Category == "" && c.Supplier == "" && c.Status == ""
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesInventory(it models.InventoryItem, c Criteria) bool {
	if c.Text != "" && !containsFold(it.Name, c.Text) && c.Text != strconv.Itoa(it.ID) {
		return false
	}
	if c.Category != "" && it.Category != c.Category {
		return false
	}
	if c.Supplier != "" && it.Supplier.Name != c.Supplier {
		return false
	}
	if c.Status != "" && (it.Shipment == nil || it.Shipment.Status != c.Status) {
		return false
	}
	return true
}

// FilterInventory returns the items matching every present criterion, in input
// order. The input slice is never modified; with no criteria set the result
// contains the same elements in the same order.
func FilterInventory(items []models.InventoryItem, c Criteria) []models.InventoryItem {
	filtered := make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		if matchesInventory(it, c) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// Results holds the per-entity outcome of a cross-entity search. Collections
// that were not searched are empty, not passed through.
type Results struct {
	Suppliers []models.Supplier `json:"suppliers"`
	Items     []models.Item     `json:"items"`
	Shipments []models.Shipment `json:"shipments"`
}

// Entity type selectors accepted by AcrossEntities.
const (
	EntityAll       = "all"
	EntitySuppliers = "suppliers"
	EntityItems     = "items"
	EntityShipments = "shipments"
)

// AcrossEntities matches text independently within each selected collection:
// suppliers on name and email, items on name and category, shipments on
// tracking number and carrier. entityType narrows the search to one
// collection; anything other than a known type behaves like "all".
func AcrossEntities(suppliers []models.Supplier, items []models.Item, shipments []models.Shipment, text, entityType string) Results {
	res := Results{
		Suppliers: []models.Supplier{},
		Items:     []models.Item{},
		Shipments: []models.Shipment{},
	}

	all := entityType != EntitySuppliers && entityType != EntityItems && entityType != EntityShipments
	if all || entityType == EntitySuppliers {
		for _, s := range suppliers {
			if text == "" || containsFold(s.Name, text) || containsFold(s.Email, text) {
				res.Suppliers = append(res.Suppliers, s)
			}
		}
	}
	if all || entityType == EntityItems {
		for _, it := range items {
			if text == "" || containsFold(it.Name, text) || containsFold(it.Category, text) {
				res.Items = append(res.Items, it)
			}
		}
	}
	if all || entityType == EntityShipments {
		for _, sh := range shipments {
			if text == "" || containsFold(sh.TrackingNumber, text) || containsFold(sh.Carrier, text) {
				res.Shipments = append(res.Shipments, sh)
			}
		}
	}
	return res
}

// Distinct returns the unique non-empty values of a field in first-seen order,
// used to populate filter dropdowns.
func Distinct[T any](items []T, value func(T) string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		v := value(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
