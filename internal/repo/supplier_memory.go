package repo

import "github.com/rogerio-castellano/logistics-dashboard/internal/models"

// InMemorySupplierRepository is an in-memory implementation of SupplierRepository.
type InMemorySupplierRepository struct {
	suppliers []models.Supplier
	nextID    int
}

// NewInMemorySupplierRepository creates a new instance of InMemorySupplierRepository.
func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{
		suppliers: []models.Supplier{},
		nextID:    1,
	}
}

// Create adds a new supplier to the repository.
func (r *InMemorySupplierRepository) Create(supplier models.Supplier) (models.Supplier, error) {
	supplier.ID = r.nextID
	r.nextID++
	r.suppliers = append(r.suppliers, supplier)
	return supplier, nil
}

// GetAll retrieves all suppliers from the repository.
func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	return r.suppliers, nil
}

// GetByID retrieves a supplier by its ID.
func (r *InMemorySupplierRepository) GetByID(id int) (models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

// Delete removes a supplier from the repository by its ID.
func (r *InMemorySupplierRepository) Delete(id int) error {
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Clear() {
	r.suppliers = []models.Supplier{}
	r.nextID = 1
}
