package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/logistics-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
	"github.com/rogerio-castellano/logistics-dashboard/internal/search"
)

var (
	supplierRepo repo.SupplierRepository
	itemRepo     repo.ItemRepository
	shipmentRepo repo.ShipmentRepository

	remoteSearch *search.RemoteClient
	cache        *redissvc.RedisService
	summaryTTL   = 30 * time.Second

	log = zap.NewNop().Sugar()
)

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetShipmentRepo(r repo.ShipmentRepository) {
	shipmentRepo = r
}

// SetRemoteSearch wires the remote search client; nil keeps searches local.
func SetRemoteSearch(c *search.RemoteClient) {
	remoteSearch = c
}

// SetCache wires the summary cache; nil disables caching.
func SetCache(rs *redissvc.RedisService, ttl time.Duration) {
	cache = rs
	if ttl > 0 {
		summaryTTL = ttl
	}
}

func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		log = l
	}
}
