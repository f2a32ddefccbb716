package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/logistics-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/logistics-dashboard/internal/http/rate_limiter"
)

// NewRouter assembles the API route table. A nil registry or logger disables
// the corresponding middleware, which keeps handler tests free of it.
func NewRouter(registry *rl.Registry, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	if log != nil {
		r.Use(RequestLogger(log))
	}
	if registry != nil {
		r.Use(RateLimit(registry))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/", handlers.CreateSupplierHandler)
			r.Get("/", handlers.GetSuppliersHandler)
			r.Get("/{id}", handlers.GetSupplierByIDHandler)
			r.Delete("/{id}", handlers.DeleteSupplierHandler)
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.CreateItemHandler)
			r.Get("/", handlers.GetItemsHandler)
			r.Post("/import", handlers.ImportItemsHandler)
			r.Get("/{id}", handlers.GetItemByIDHandler)
			r.Put("/{id}", handlers.UpdateItemHandler)
			r.Delete("/{id}", handlers.DeleteItemHandler)
			r.Post("/{id}/adjust", handlers.AdjustStockHandler)
			r.Get("/{id}/shipments", handlers.GetItemShipmentsHandler)
		})

		r.Route("/shipments", func(r chi.Router) {
			r.Post("/", handlers.CreateShipmentHandler)
			r.Get("/", handlers.GetShipmentsHandler)
			r.Get("/{id}", handlers.GetShipmentByIDHandler)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handlers.GetInventoryHandler)
			r.Get("/search", handlers.SearchInventoryHandler)
			r.Get("/export", handlers.ExportInventoryHandler)
		})

		r.Get("/search", handlers.SearchAcrossEntitiesHandler)
		r.Get("/search/filters", handlers.GetSearchFiltersHandler)

		r.Get("/dashboard/summary", handlers.GetDashboardSummaryHandler)

		r.Route("/charts", func(r chi.Router) {
			r.Get("/items-by-category.svg", handlers.ItemsByCategoryChartHandler)
			r.Get("/stock-distribution.svg", handlers.StockDistributionChartHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
