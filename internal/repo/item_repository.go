package repo

import "github.com/rogerio-castellano/logistics-dashboard/internal/models"

// ItemRepository defines the interface for logistics item data operations.
type ItemRepository interface {
	Create(item models.Item) (models.Item, error)
	GetAll() ([]models.Item, error)
	GetByID(id int) (models.Item, error)
	GetByName(name string) (models.Item, error)
	Update(item models.Item) (models.Item, error)
	Delete(id int) error
	// AdjustStock moves delta units between available stock and units sold.
	// A positive delta restocks; a negative delta records a sale.
	AdjustStock(itemID, delta int) (models.Item, error)
}
