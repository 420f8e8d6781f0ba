// Package pgstore implements boxes.Store on PostgreSQL.
//
// Expected schema (mirrors the storage site models):
//
//	warehouses(id, address)
//	box_types(id, warehouse_id, volume NUMERIC)
//	boxes(id, box_type_id, number, status, current_agreement)
package pgstore

import (
	"context"
	"fmt"
	"strconv"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-depselect/components/boxes"
)

const (
	warehousesQuery = `
		SELECT id::text, address
		FROM warehouses
		ORDER BY id`

	boxesByWarehouseQuery = `
		SELECT b.id::text, b.number, bt.volume, b.status, COALESCE(b.current_agreement, '')
		FROM boxes b
		JOIN box_types bt ON bt.id = b.box_type_id
		WHERE bt.warehouse_id::text = $1
		ORDER BY b.number, b.id`
)

// Store reads warehouses and boxes through a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

var _ boxes.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// NewPool opens a pool for dsn with NUMERIC columns decoded into
// shopspring decimals.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: parse dsn: %w", err)
	}
	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgstore: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	return pool, nil
}

func (s *Store) Warehouses(ctx context.Context) ([]boxes.Warehouse, error) {
	rows, err := s.pool.Query(ctx, warehousesQuery)
	if err != nil {
		return nil, fmt.Errorf("pgstore: list warehouses: %w", err)
	}
	defer rows.Close()

	var out []boxes.Warehouse
	for rows.Next() {
		var w boxes.Warehouse
		if err := rows.Scan(&w.ID, &w.Address); err != nil {
			return nil, fmt.Errorf("pgstore: scan warehouse: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: list warehouses: %w", err)
	}
	return out, nil
}

func (s *Store) BoxesByWarehouse(ctx context.Context, warehouseID string) ([]boxes.Box, error) {
	if _, err := strconv.ParseInt(warehouseID, 10, 64); err != nil {
		// Non-numeric ids cannot match a serial key.
		return []boxes.Box{}, nil
	}

	rows, err := s.pool.Query(ctx, boxesByWarehouseQuery, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("pgstore: list boxes: %w", err)
	}
	defer rows.Close()

	out := []boxes.Box{}
	for rows.Next() {
		var (
			box    boxes.Box
			volume decimal.Decimal
			status string
		)
		if err := rows.Scan(&box.ID, &box.Number, &volume, &status, &box.CurrentAgreement); err != nil {
			return nil, fmt.Errorf("pgstore: scan box: %w", err)
		}
		box.WarehouseID = warehouseID
		box.Volume = volume
		box.Status = boxes.Status(status)
		out = append(out, box)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: list boxes: %w", err)
	}
	return out, nil
}
