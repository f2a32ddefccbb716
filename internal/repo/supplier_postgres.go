package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

type PostgresSupplierRepository struct {
	db *sql.DB
}

func NewPostgresSupplierRepository(db *sql.DB) *PostgresSupplierRepository {
	return &PostgresSupplierRepository{db: db}
}

func (r *PostgresSupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	query := `INSERT INTO suppliers (name, contact_number, email, address) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, s.Name, s.ContactNumber, s.Email, s.Address).Scan(&s.ID)
	return s, err
}

func (r *PostgresSupplierRepository) GetAll() ([]models.Supplier, error) {
	query := `SELECT id, name, contact_number, email, address FROM suppliers ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactNumber, &s.Email, &s.Address); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *PostgresSupplierRepository) GetByID(id int) (models.Supplier, error) {
	query := `SELECT id, name, contact_number, email, address FROM suppliers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Supplier
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.ContactNumber, &s.Email, &s.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Supplier{}, ErrSupplierNotFound
	}
	return s, err
}

func (r *PostgresSupplierRepository) Delete(id int) error {
	query := `DELETE FROM suppliers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
