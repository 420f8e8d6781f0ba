package pgstore

import (
	"context"
	"os"
	"testing"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-depselect/components/boxes"
)

const schema = `
CREATE TEMP TABLE warehouses (id serial PRIMARY KEY, address text NOT NULL);
CREATE TEMP TABLE box_types (id serial PRIMARY KEY, warehouse_id int NOT NULL, volume numeric(6,2) NOT NULL);
CREATE TEMP TABLE boxes (id serial PRIMARY KEY, box_type_id int NOT NULL, number int NOT NULL, status text NOT NULL, current_agreement text);
INSERT INTO warehouses (id, address) VALUES (1, '12 Dock Road'), (2, 'Empty Yard');
INSERT INTO box_types (id, warehouse_id, volume) VALUES (1, 1, 2.50), (2, 1, 4.00);
INSERT INTO boxes (id, box_type_id, number, status, current_agreement) VALUES
	(11, 2, 2, 'occupied', 'A-17'),
	(10, 1, 1, 'free', NULL);
`

// openTestPool connects to DEPSELECT_TEST_DATABASE_URL with a single
// connection so temporary tables stay visible to every query.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DEPSELECT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DEPSELECT_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	cfg.MaxConns = 1
	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return pool
}

func TestStore_BoxesByWarehouse(t *testing.T) {
	store := New(openTestPool(t))
	ctx := context.Background()

	got, err := store.BoxesByWarehouse(ctx, "1")
	if err != nil {
		t.Fatalf("boxes: %v", err)
	}
	if len(got) != 2 || got[0].ID != "10" || got[1].ID != "11" {
		t.Fatalf("expected boxes ordered by number, got %#v", got)
	}
	if !got[0].Volume.Equal(decimal.RequireFromString("2.5")) || got[0].Status != boxes.StatusFree {
		t.Fatalf("unexpected first box %#v", got[0])
	}
	if got[1].CurrentAgreement != "A-17" || got[1].Free() {
		t.Fatalf("unexpected second box %#v", got[1])
	}

	empty, err := store.BoxesByWarehouse(ctx, "2")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no boxes, got %#v (%v)", empty, err)
	}
}

func TestStore_NonNumericWarehouse(t *testing.T) {
	store := New(nil)
	got, err := store.BoxesByWarehouse(context.Background(), "north")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty result without querying, got %#v (%v)", got, err)
	}
}

func TestStore_Warehouses(t *testing.T) {
	store := New(openTestPool(t))
	got, err := store.Warehouses(context.Background())
	if err != nil {
		t.Fatalf("warehouses: %v", err)
	}
	if len(got) != 2 || got[0].Address != "12 Dock Road" {
		t.Fatalf("unexpected warehouses %#v", got)
	}
}
