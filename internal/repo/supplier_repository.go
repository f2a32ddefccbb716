package repo

import "github.com/rogerio-castellano/logistics-dashboard/internal/models"

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	Create(supplier models.Supplier) (models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	GetByID(id int) (models.Supplier, error)
	Delete(id int) error
}
