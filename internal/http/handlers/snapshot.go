package handlers

import (
	"sync"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

// fetchSnapshot loads all three collections in parallel. Each fetch succeeds
// or fails on its own: a failing repository contributes an empty slice and a
// logged diagnostic, and never blocks the others from filling their part of
// the snapshot.
func fetchSnapshot() (suppliers []models.Supplier, items []models.Item, shipments []models.Shipment) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		var err error
		if suppliers, err = supplierRepo.GetAll(); err != nil {
			log.Errorw("failed to fetch suppliers", "error", err)
			suppliers = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if items, err = itemRepo.GetAll(); err != nil {
			log.Errorw("failed to fetch items", "error", err)
			items = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if shipments, err = shipmentRepo.GetAll(); err != nil {
			log.Errorw("failed to fetch shipments", "error", err)
			shipments = nil
		}
	}()

	wg.Wait()
	return suppliers, items, shipments
}
