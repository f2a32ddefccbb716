package repo

import (
	"time"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
type InMemoryItemRepository struct {
	items  []models.Item
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

// Create adds a new item to the repository.
func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return models.Item{}, ErrDuplicatedValueUnique
		}
	}
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all items from the repository.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	return r.items, nil
}

// GetByID retrieves an item by its ID.
func (r *InMemoryItemRepository) GetByID(id int) (models.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// GetByName retrieves an item by its exact name.
func (r *InMemoryItemRepository) GetByName(name string) (models.Item, error) {
	for _, it := range r.items {
		if it.Name == name {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Update modifies an existing item in the repository.
func (r *InMemoryItemRepository) Update(item models.Item) (models.Item, error) {
	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Delete removes an item from the repository by its ID.
func (r *InMemoryItemRepository) Delete(id int) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// AdjustStock implements ItemRepository.
func (r *InMemoryItemRepository) AdjustStock(itemID, delta int) (models.Item, error) {
	for i, it := range r.items {
		if it.ID == itemID {
			if it.Quantity+delta < 0 {
				return models.Item{}, ErrInvalidStockChange
			}
			it.Quantity += delta
			if delta < 0 {
				it.StockSold += -delta
			}
			it.LastUpdated = time.Now().UTC()
			r.items[i] = it
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Clear() {
	r.items = []models.Item{}
	r.nextID = 1
}
