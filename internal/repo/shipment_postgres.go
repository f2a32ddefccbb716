package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

type PostgresShipmentRepository struct {
	db *sql.DB
}

func NewPostgresShipmentRepository(db *sql.DB) *PostgresShipmentRepository {
	return &PostgresShipmentRepository{db: db}
}

const defaultHistoryLimit = 100

const shipmentColumns = `sh.id, sh.item_id, sh.supplier_id, sh.shipment_date, sh.status, sh.carrier, sh.tracking_number,
	COALESCE(i.name, ''), COALESCE(s.name, '')`

const shipmentJoins = ` FROM shipments sh
	LEFT JOIN items i ON sh.item_id = i.id
	LEFT JOIN suppliers s ON sh.supplier_id = s.id`

func scanShipment(row interface{ Scan(...any) error }) (models.Shipment, error) {
	var sh models.Shipment
	err := row.Scan(&sh.ID, &sh.ItemID, &sh.SupplierID, &sh.ShipmentDate, &sh.Status,
		&sh.Carrier, &sh.TrackingNumber, &sh.ItemName, &sh.SupplierName)
	return sh, err
}

func (r *PostgresShipmentRepository) Create(sh models.Shipment) (models.Shipment, error) {
	query := `INSERT INTO shipments (item_id, supplier_id, shipment_date, status, carrier, tracking_number)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, sh.ItemID, sh.SupplierID, sh.ShipmentDate,
		sh.Status, sh.Carrier, sh.TrackingNumber).Scan(&sh.ID)
	return sh, err
}

func (r *PostgresShipmentRepository) GetAll() ([]models.Shipment, error) {
	query := `SELECT ` + shipmentColumns + shipmentJoins + ` ORDER BY sh.id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shipments []models.Shipment
	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, sh)
	}
	return shipments, rows.Err()
}

func (r *PostgresShipmentRepository) GetByID(id int) (models.Shipment, error) {
	query := `SELECT ` + shipmentColumns + shipmentJoins + ` WHERE sh.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	sh, err := scanShipment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Shipment{}, ErrShipmentNotFound
	}
	return sh, err
}

// GetByItemID returns the shipment history of one item, newest first, along
// with the total match count before pagination.
func (r *PostgresShipmentRepository) GetByItemID(itemID int, sf ShipmentFilter) ([]models.Shipment, int, error) {
	whereClause, args := buildShipmentWhere(itemID, sf)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	countQuery := `SELECT COUNT(*) FROM shipments sh ` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	query := `SELECT ` + shipmentColumns + shipmentJoins + ` ` + whereClause + ` ORDER BY sh.shipment_date DESC, sh.id DESC`
	argIdx := len(args) + 1

	limit := defaultHistoryLimit
	if sf.Limit != nil && *sf.Limit > 0 {
		limit = min(*sf.Limit, defaultHistoryLimit)
	}
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)
	argIdx++

	if sf.Offset != nil && *sf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *sf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var shipments []models.Shipment
	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, 0, err
		}
		shipments = append(shipments, sh)
	}
	return shipments, total, rows.Err()
}

func buildShipmentWhere(itemID int, sf ShipmentFilter) (string, []any) {
	whereClause := "WHERE sh.item_id = $1"
	args := []any{itemID}
	argIdx := 2

	if sf.Since != nil {
		whereClause += fmt.Sprintf(" AND sh.shipment_date >= $%d", argIdx)
		args = append(args, *sf.Since)
		argIdx++
	}
	if sf.Until != nil {
		whereClause += fmt.Sprintf(" AND sh.shipment_date <= $%d", argIdx)
		args = append(args, *sf.Until)
	}
	return whereClause, args
}
