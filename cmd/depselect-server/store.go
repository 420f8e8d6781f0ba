package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-depselect/components/boxes"
	"github.com/goliatone/go-depselect/components/boxes/pgstore"
	"github.com/goliatone/go-depselect/internal/config"
)

// openStore prefers PostgreSQL, then a YAML inventory, then an empty
// in-memory store.
func openStore(ctx context.Context, cfg *config.Config) (boxes.Store, func(), error) {
	if dsn := strings.TrimSpace(cfg.DB.DatabaseURL); dsn != "" {
		pool, err := pgstore.NewPool(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.New(pool), pool.Close, nil
	}

	if path := strings.TrimSpace(cfg.Lookup.InventoryFile); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open inventory: %w", err)
		}
		defer f.Close()
		store, err := boxes.LoadInventory(f)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	return boxes.NewMemoryStore(), func() {}, nil
}
