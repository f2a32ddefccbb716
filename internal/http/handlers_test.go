package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/logistics-dashboard/internal/http"
	"github.com/rogerio-castellano/logistics-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
	"github.com/rogerio-castellano/logistics-dashboard/internal/search"
)

var (
	supplierRepo *repo.InMemorySupplierRepository
	itemRepo     *repo.InMemoryItemRepository
	shipmentRepo *repo.InMemoryShipmentRepository
)

func init() {
	supplierRepo = repo.NewInMemorySupplierRepository()
	itemRepo = repo.NewInMemoryItemRepository()
	shipmentRepo = repo.NewInMemoryShipmentRepository()
	handlers.SetSupplierRepo(supplierRepo)
	handlers.SetItemRepo(itemRepo)
	handlers.SetShipmentRepo(shipmentRepo)
}

func clearAll() {
	supplierRepo.Clear()
	itemRepo.Clear()
	shipmentRepo.Clear()
}

func newRouter() http.Handler {
	return api.NewRouter(nil, nil)
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSupplier(t *testing.T, r http.Handler, name string) models.Supplier {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/suppliers", handlers.SupplierRequest{
		Name:  name,
		Email: strings.ToLower(name) + "@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create supplier %q: %d", name, w.Code)
	}
	var s models.Supplier
	json.NewDecoder(w.Body).Decode(&s)
	return s
}

func createItem(t *testing.T, r http.Handler, req handlers.ItemRequest) models.Item {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/items", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create item %q: %d %s", req.Name, w.Code, w.Body.String())
	}
	var it models.Item
	json.NewDecoder(w.Body).Decode(&it)
	return it
}

func createShipment(t *testing.T, r http.Handler, req handlers.ShipmentRequest) models.Shipment {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/shipments", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create shipment: %d %s", w.Code, w.Body.String())
	}
	var sh models.Shipment
	json.NewDecoder(w.Body).Decode(&sh)
	return sh
}

func TestCreateSupplierHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	t.Run("Valid", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/suppliers", handlers.SupplierRequest{
			Name: "Acme Logistics", Email: "ops@acme.example", ContactNumber: "555-0101",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		var s models.Supplier
		if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if s.ID == 0 {
			t.Error("expected assigned ID")
		}
		if s.Name != "Acme Logistics" {
			t.Errorf("expected name 'Acme Logistics', got %v", s.Name)
		}
	})

	t.Run("Missing name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/suppliers", handlers.SupplierRequest{Email: "x@y.example"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/suppliers", strings.NewReader(`{invalid`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestGetSupplierByIDHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	created := createSupplier(t, r, "Globex")

	t.Run("Found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/suppliers/%d", created.ID), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var s models.Supplier
		json.NewDecoder(w.Body).Decode(&s)
		if s.Name != "Globex" {
			t.Errorf("expected 'Globex', got %v", s.Name)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/suppliers/999999", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})

	t.Run("Invalid ID", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/suppliers/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestDeleteSupplierHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	created := createSupplier(t, r, "ShortLived")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/suppliers/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCreateItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "Initech")

	t.Run("Valid", func(t *testing.T) {
		it := createItem(t, r, handlers.ItemRequest{
			Name: "Pallet Jack", Quantity: 4, Unit: "pcs", Category: "Equipment", SupplierID: supplier.ID,
		})
		if it.Name != "Pallet Jack" || it.Quantity != 4 {
			t.Errorf("unexpected item: %+v", it)
		}
		if it.LastUpdated.IsZero() {
			t.Error("expected last_updated to be set")
		}
	})

	t.Run("Duplicate name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/items", handlers.ItemRequest{
			Name: "Pallet Jack", Quantity: 1, SupplierID: supplier.ID,
		})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("Validation errors", func(t *testing.T) {
		tests := []struct {
			name    string
			payload handlers.ItemRequest
		}{
			{"Empty name", handlers.ItemRequest{Quantity: 1, SupplierID: supplier.ID}},
			{"Negative quantity", handlers.ItemRequest{Name: "Crate", Quantity: -1, SupplierID: supplier.ID}},
			{"Missing supplier", handlers.ItemRequest{Name: "Crate", Quantity: 1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doJSON(t, r, http.MethodPost, "/api/items", tt.payload)
				if w.Code != http.StatusBadRequest {
					t.Errorf("expected 400 Bad Request, got %d", w.Code)
				}
			})
		}
	})
}

func TestAdjustStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "StockCo")
	created := createItem(t, r, handlers.ItemRequest{
		Name: "Drum", Quantity: 10, Unit: "pcs", Category: "Containers", SupplierID: supplier.ID,
	})

	t.Run("Restock", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/items/%d/adjust", created.ID), handlers.StockAdjustmentRequest{Delta: 5})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var it models.Item
		json.NewDecoder(w.Body).Decode(&it)
		if it.Quantity != 15 {
			t.Errorf("expected quantity 15, got %d", it.Quantity)
		}
	})

	t.Run("Sale records sold units", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/items/%d/adjust", created.ID), handlers.StockAdjustmentRequest{Delta: -3})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var it models.Item
		json.NewDecoder(w.Body).Decode(&it)
		if it.Quantity != 12 {
			t.Errorf("expected quantity 12, got %d", it.Quantity)
		}
		if it.StockSold != 3 {
			t.Errorf("expected stock_sold 3, got %d", it.StockSold)
		}
	})

	t.Run("Underflow", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/items/%d/adjust", created.ID), handlers.StockAdjustmentRequest{Delta: -100})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("Unknown item", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/items/999999/adjust", handlers.StockAdjustmentRequest{Delta: 1})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})

	t.Run("Invalid ID", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/items/abc/adjust", handlers.StockAdjustmentRequest{Delta: 1})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestGetItemShipmentsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "ShipCo")
	item := createItem(t, r, handlers.ItemRequest{Name: "Reel", Quantity: 3, SupplierID: supplier.ID})

	dates := []string{"2024-01-10", "2024-02-20", "2024-03-05"}
	for _, d := range dates {
		createShipment(t, r, handlers.ShipmentRequest{
			ItemID: item.ID, SupplierID: supplier.ID, ShipmentDate: d, Status: models.StatusDelivered,
		})
	}

	t.Run("All, newest first", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/items/%d/shipments", item.ID), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handlers.ShipmentsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 3 {
			t.Errorf("expected total_count 3, got %d", resp.Meta.TotalCount)
		}
		if len(resp.Data) != 3 || resp.Data[0].ShipmentDate != "2024-03-05" {
			t.Errorf("expected newest shipment first, got %+v", resp.Data)
		}
	})

	t.Run("Date range", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/items/%d/shipments?since=2024-02-01&until=2024-02-28", item.ID), nil)
		var resp handlers.ShipmentsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].ShipmentDate != "2024-02-20" {
			t.Errorf("expected the February shipment only, got %+v", resp.Data)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/items/%d/shipments?offset=1&limit=1", item.ID), nil)
		var resp handlers.ShipmentsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 3 {
			t.Errorf("expected total_count 3, got %d", resp.Meta.TotalCount)
		}
		if len(resp.Data) != 1 || resp.Data[0].ShipmentDate != "2024-02-20" {
			t.Errorf("expected the middle shipment, got %+v", resp.Data)
		}
	})

	t.Run("Unknown item", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/items/999999/shipments", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})
}

func TestCreateShipmentHandler_InvalidStatus(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/shipments", handlers.ShipmentRequest{
		ItemID: 1, SupplierID: 1, ShipmentDate: "2024-05-01", Status: "Teleported",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetInventoryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "ViewCo")
	item := createItem(t, r, handlers.ItemRequest{Name: "Hose", Quantity: 6, Unit: "m", Category: "Fluids", SupplierID: supplier.ID})
	orphan := createItem(t, r, handlers.ItemRequest{Name: "Orphan", Quantity: 2, SupplierID: 4242})
	createShipment(t, r, handlers.ShipmentRequest{
		ItemID: item.ID, SupplierID: supplier.ID, ShipmentDate: "2024-01-01", Status: models.StatusDelivered,
	})
	latest := createShipment(t, r, handlers.ShipmentRequest{
		ItemID: item.ID, SupplierID: supplier.ID, ShipmentDate: "2024-06-01", Status: models.StatusInTransit,
	})

	w := doJSON(t, r, http.MethodGet, "/api/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var view []models.InventoryItem
	json.NewDecoder(w.Body).Decode(&view)
	if len(view) != 2 {
		t.Fatalf("expected 2 inventory rows, got %d", len(view))
	}

	if view[0].Supplier.Name != "ViewCo" {
		t.Errorf("expected supplier 'ViewCo', got %q", view[0].Supplier.Name)
	}
	if view[0].Shipment == nil || view[0].Shipment.ID != latest.ID {
		t.Errorf("expected latest shipment embedded, got %+v", view[0].Shipment)
	}

	// Dangling supplier reference resolves to a placeholder.
	if view[1].ID != orphan.ID || view[1].Supplier.Name != "Supplier 4242" {
		t.Errorf("expected placeholder supplier name, got %q", view[1].Supplier.Name)
	}
	if view[1].Shipment != nil {
		t.Errorf("expected no shipment for orphan item, got %+v", view[1].Shipment)
	}
}

func TestSearchInventoryHandler_Local(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "FilterCo")
	bolt := createItem(t, r, handlers.ItemRequest{Name: "Bolt", Quantity: 100, Category: "Hardware", SupplierID: supplier.ID})
	createItem(t, r, handlers.ItemRequest{Name: "Rope", Quantity: 30, Category: "Rigging", SupplierID: supplier.ID})
	createShipment(t, r, handlers.ShipmentRequest{
		ItemID: bolt.ID, SupplierID: supplier.ID, ShipmentDate: "2024-04-04", Status: models.StatusPending,
	})

	t.Run("By category", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/inventory/search?category=Hardware", nil)
		var resp handlers.InventorySearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].Name != "Bolt" {
			t.Errorf("expected only 'Bolt', got %+v", resp.Data)
		}
	})

	t.Run("By ID text", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/inventory/search?item_name=%d", bolt.ID), nil)
		var resp handlers.InventorySearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].ID != bolt.ID {
			t.Errorf("expected match by ID, got %+v", resp.Data)
		}
	})

	t.Run("By status excludes items without shipments", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/inventory/search?status=Pending", nil)
		var resp handlers.InventorySearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].Name != "Bolt" {
			t.Errorf("expected only the shipped item, got %+v", resp.Data)
		}
	})

	t.Run("No criteria returns everything", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/inventory/search", nil)
		var resp handlers.InventorySearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 2 {
			t.Errorf("expected 2 rows, got %d", len(resp.Data))
		}
	})
}

func TestSearchInventoryHandler_Remote(t *testing.T) {
	t.Cleanup(func() {
		handlers.SetRemoteSearch(nil)
		clearAll()
	})
	r := newRouter()

	t.Run("Delegates and returns remote data", func(t *testing.T) {
		remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if got := req.URL.Query().Get("category"); got != "Hardware" {
				t.Errorf("expected category=Hardware forwarded, got %q", got)
			}
			if _, present := req.URL.Query()["status"]; present {
				t.Error("empty status criterion must not be forwarded")
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]models.InventoryItem{{ID: 7, Name: "Remote Bolt"}})
		}))
		defer remote.Close()
		handlers.SetRemoteSearch(search.NewRemoteClient(remote.URL))

		w := doJSON(t, r, http.MethodGet, "/api/inventory/search?category=Hardware", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handlers.InventorySearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].Name != "Remote Bolt" {
			t.Errorf("expected remote result, got %+v", resp.Data)
		}
	})

	t.Run("Remote failure yields empty data and error", func(t *testing.T) {
		remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer remote.Close()
		handlers.SetRemoteSearch(search.NewRemoteClient(remote.URL))

		w := doJSON(t, r, http.MethodGet, "/api/inventory/search?category=Hardware", nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502 Bad Gateway, got %d", w.Code)
		}
		var resp handlers.InventorySearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 0 {
			t.Errorf("expected empty data on failure, got %+v", resp.Data)
		}
		if resp.Err == "" {
			t.Error("expected error message in response")
		}
	})
}

func TestSearchAcrossEntitiesHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "Nordic Freight")
	item := createItem(t, r, handlers.ItemRequest{Name: "Nordic Pine Crate", Quantity: 9, Category: "Packaging", SupplierID: supplier.ID})
	createShipment(t, r, handlers.ShipmentRequest{
		ItemID: item.ID, SupplierID: supplier.ID, ShipmentDate: "2024-07-07",
		Status: models.StatusPending, Carrier: "Nordic Express", TrackingNumber: "NE-1",
	})

	t.Run("All entities", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/search?search=nordic", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var res search.Results
		json.NewDecoder(w.Body).Decode(&res)
		if len(res.Suppliers) != 1 || len(res.Items) != 1 || len(res.Shipments) != 1 {
			t.Errorf("expected one match per collection, got %d/%d/%d",
				len(res.Suppliers), len(res.Items), len(res.Shipments))
		}
	})

	t.Run("Entity narrows to items only", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/search?search=nordic&entity=items", nil)
		var res search.Results
		json.NewDecoder(w.Body).Decode(&res)
		if len(res.Items) != 1 {
			t.Errorf("expected 1 item match, got %d", len(res.Items))
		}
		if len(res.Suppliers) != 0 || len(res.Shipments) != 0 {
			t.Errorf("unsearched collections must come back empty, got %d suppliers, %d shipments",
				len(res.Suppliers), len(res.Shipments))
		}
	})

	t.Run("Unknown entity behaves like all", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/search?search=nordic&entity=warehouses", nil)
		var res search.Results
		json.NewDecoder(w.Body).Decode(&res)
		if len(res.Suppliers) != 1 || len(res.Items) != 1 || len(res.Shipments) != 1 {
			t.Errorf("expected matches in all collections, got %d/%d/%d",
				len(res.Suppliers), len(res.Items), len(res.Shipments))
		}
	})
}

func TestGetSearchFiltersHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "DistinctCo")
	createItem(t, r, handlers.ItemRequest{Name: "A", Quantity: 1, Category: "Tools", SupplierID: supplier.ID})
	createItem(t, r, handlers.ItemRequest{Name: "B", Quantity: 1, Category: "Tools", SupplierID: supplier.ID})
	createItem(t, r, handlers.ItemRequest{Name: "C", Quantity: 1, Category: "Food", SupplierID: supplier.ID})

	w := doJSON(t, r, http.MethodGet, "/api/search/filters", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var filters handlers.SearchFilters
	json.NewDecoder(w.Body).Decode(&filters)
	if len(filters.Categories) != 2 || filters.Categories[0] != "Tools" || filters.Categories[1] != "Food" {
		t.Errorf("expected categories [Tools Food] in first-seen order, got %v", filters.Categories)
	}
	if len(filters.Suppliers) != 1 || filters.Suppliers[0] != "DistinctCo" {
		t.Errorf("expected suppliers [DistinctCo], got %v", filters.Suppliers)
	}
	if filters.Statuses == nil {
		t.Error("statuses must be an empty list, not null")
	}
}

func TestGetDashboardSummaryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "SummaryCo")
	low := createItem(t, r, handlers.ItemRequest{Name: "Lowling", Quantity: 4, SupplierID: supplier.ID})
	createItem(t, r, handlers.ItemRequest{Name: "Plenty", Quantity: 20, SupplierID: supplier.ID})
	createShipment(t, r, handlers.ShipmentRequest{
		ItemID: low.ID, SupplierID: supplier.ID, ShipmentDate: "2024-08-08", Status: models.StatusPending,
	})
	createShipment(t, r, handlers.ShipmentRequest{
		ItemID: low.ID, SupplierID: supplier.ID, ShipmentDate: "2024-08-09", Status: models.StatusDelivered,
	})

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var summary map[string]any
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	expect := map[string]float64{
		"total_suppliers":   1,
		"total_items":       2,
		"total_quantity":    24,
		"low_stock_items":   1,
		"total_shipments":   2,
		"pending_shipments": 1,
		"stock_efficiency":  0,
	}
	for field, want := range expect {
		if got, ok := summary[field].(float64); !ok || got != want {
			t.Errorf("expected %s=%v, got %v", field, want, summary[field])
		}
	}
	if _, ok := summary["recent_items"].([]any); !ok {
		t.Error("expected recent_items list")
	}
}

func TestChartHandlers(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "ChartCo")
	createItem(t, r, handlers.ItemRequest{Name: "Wrench", Quantity: 12, Category: "Tools", SupplierID: supplier.ID})
	createItem(t, r, handlers.ItemRequest{Name: "Apple", Quantity: 8, Category: "Food", SupplierID: supplier.ID})

	t.Run("Items by category", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/charts/items-by-category.svg", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "image/svg+xml") {
			t.Errorf("expected image/svg+xml, got %s", ct)
		}
		body := w.Body.String()
		if !strings.Contains(body, "<svg") || !strings.Contains(body, "Tools") {
			t.Errorf("expected SVG with category labels, got: %.120s", body)
		}
	})

	t.Run("Stock distribution", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/charts/stock-distribution.svg", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Available") {
			t.Error("expected legend with series names")
		}
	})
}

func TestExportInventoryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "ExportCo")
	createItem(t, r, handlers.ItemRequest{Name: "Ledger", Quantity: 2, Unit: "pcs", Category: "Office", SupplierID: supplier.ID})

	w := doJSON(t, r, http.MethodGet, "/api/inventory/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Errorf("expected text/csv, got %s", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "id,name,stock_available") {
		t.Errorf("expected CSV header, got: %.120s", body)
	}
	if !strings.Contains(body, "Ledger") {
		t.Error("expected exported row for 'Ledger'")
	}
}

func TestImportItemsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	supplier := createSupplier(t, r, "ImportCo")
	createItem(t, r, handlers.ItemRequest{Name: "Existing", Quantity: 1, SupplierID: supplier.ID})

	importCSV := func(t *testing.T, mode, csvBody string) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("file", "items.csv")
		fw.Write([]byte(csvBody))
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/items/import?mode="+mode, &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Skip mode leaves existing items alone", func(t *testing.T) {
		csvBody := "name,quantity,unit,category,supplier_id\n" +
			fmt.Sprintf("Existing,99,pcs,Office,%d\n", supplier.ID) +
			fmt.Sprintf("Fresh,5,pcs,Office,%d\n", supplier.ID)
		w := importCSV(t, "skip", csvBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d %s", w.Code, w.Body.String())
		}
		var resp handlers.ImportItemsResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.ImportedItemsCount != 1 {
			t.Errorf("expected 1 import, got %d", resp.ImportedItemsCount)
		}

		existing, _ := itemRepo.GetByName("Existing")
		if existing.Quantity != 1 {
			t.Errorf("skip mode must not touch existing item, quantity is %d", existing.Quantity)
		}
	})

	t.Run("Update mode overwrites existing items", func(t *testing.T) {
		csvBody := "name,quantity,unit,category,supplier_id\n" +
			fmt.Sprintf("Existing,42,pcs,Office,%d\n", supplier.ID)
		w := importCSV(t, "update", csvBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		existing, _ := itemRepo.GetByName("Existing")
		if existing.Quantity != 42 {
			t.Errorf("expected quantity 42 after update, got %d", existing.Quantity)
		}
	})

	t.Run("Invalid rows are reported, valid ones imported", func(t *testing.T) {
		csvBody := "name,quantity,unit,category,supplier_id\n" +
			",5,pcs,Office,1\n" +
			fmt.Sprintf("Partial,5,pcs,Office,%d\n", supplier.ID)
		w := importCSV(t, "skip", csvBody)
		var resp handlers.ImportItemsResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.ImportedItemsCount != 1 {
			t.Errorf("expected 1 import, got %d", resp.ImportedItemsCount)
		}
		if len(resp.Errors) != 1 {
			t.Errorf("expected 1 row error, got %d", len(resp.Errors))
		}
	})

	t.Run("Missing column rejected", func(t *testing.T) {
		w := importCSV(t, "skip", "name,quantity\nX,1\n")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("Invalid mode rejected", func(t *testing.T) {
		w := importCSV(t, "merge", "name,quantity,unit,category,supplier_id\n")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}
