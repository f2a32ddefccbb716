package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = `i.id, i.name, i.quantity, i.unit, i.category, i.supplier_id, i.stock_sold, i.last_updated, COALESCE(s.name, '')`

func scanItem(row interface{ Scan(...any) error }) (models.Item, error) {
	var it models.Item
	err := row.Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.Category,
		&it.SupplierID, &it.StockSold, &it.LastUpdated, &it.SupplierName)
	return it, err
}

func (r *PostgresItemRepository) Create(it models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, quantity, unit, category, supplier_id, stock_sold, last_updated)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it.LastUpdated = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, it.Name, it.Quantity, it.Unit, it.Category,
		it.SupplierID, it.StockSold, it.LastUpdated).Scan(&it.ID)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return models.Item{}, ErrDuplicatedValueUnique
	}
	return it, err
}

func (r *PostgresItemRepository) GetAll() ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i LEFT JOIN suppliers s ON i.supplier_id = s.id ORDER BY i.id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) GetByID(id int) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i LEFT JOIN suppliers s ON i.supplier_id = s.id WHERE i.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) GetByName(name string) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i LEFT JOIN suppliers s ON i.supplier_id = s.id WHERE i.name = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) Update(it models.Item) (models.Item, error) {
	query := `UPDATE items SET name = $1, quantity = $2, unit = $3, category = $4, supplier_id = $5, last_updated = $6 WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it.LastUpdated = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, it.Name, it.Quantity, it.Unit, it.Category, it.SupplierID, it.LastUpdated, it.ID)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return it, nil
}

func (r *PostgresItemRepository) Delete(id int) error {
	query := `DELETE FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) AdjustStock(itemID, delta int) (models.Item, error) {
	query := `
		UPDATE items
		SET quantity = quantity + $1,
		    stock_sold = stock_sold + CASE WHEN $1 < 0 THEN -$1 ELSE 0 END,
		    last_updated = $2
		WHERE id = $3 AND quantity + $1 >= 0
		RETURNING id, name, quantity, unit, category, supplier_id, stock_sold, last_updated
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var it models.Item
	err := r.db.QueryRowContext(ctx, query, delta, time.Now().UTC(), itemID).
		Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.Category, &it.SupplierID, &it.StockSold, &it.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrInvalidStockChange
	}
	return it, err
}
