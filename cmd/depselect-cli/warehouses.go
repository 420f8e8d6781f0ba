package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-depselect/components/boxes"
	"github.com/goliatone/go-depselect/components/boxes/pgstore"
	"github.com/goliatone/go-depselect/internal/config"
	"github.com/goliatone/go-depselect/pkg/depselect"
)

var errNoWarehouses = errors.New("no warehouses configured")

// warehouseOptions resolves the warehouse list from the flag value, or from
// the configured database or inventory file when the flag is empty.
func warehouseOptions(ctx context.Context, cfg *config.Config, raw string) ([]depselect.Option, error) {
	if strings.TrimSpace(raw) != "" {
		return parseWarehouses(raw)
	}

	var store boxes.Store
	switch {
	case strings.TrimSpace(cfg.DB.DatabaseURL) != "":
		pool, err := pgstore.NewPool(ctx, cfg.DB.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		store = pgstore.New(pool)
	case strings.TrimSpace(cfg.Lookup.InventoryFile) != "":
		f, err := os.Open(cfg.Lookup.InventoryFile)
		if err != nil {
			return nil, fmt.Errorf("open inventory: %w", err)
		}
		defer f.Close()
		mem, err := boxes.LoadInventory(f)
		if err != nil {
			return nil, err
		}
		store = mem
	default:
		return nil, errNoWarehouses
	}

	warehouses, err := store.Warehouses(ctx)
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return nil, errNoWarehouses
	}
	options := make([]depselect.Option, 0, len(warehouses))
	for _, wh := range warehouses {
		options = append(options, depselect.Option{Value: wh.ID, Label: wh.Address})
	}
	return options, nil
}

func parseWarehouses(raw string) ([]depselect.Option, error) {
	var options []depselect.Option
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, label, ok := strings.Cut(part, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid warehouse %q", part)
		}
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			label = id
		}
		options = append(options, depselect.Option{Value: id, Label: label})
	}
	if len(options) == 0 {
		return nil, errNoWarehouses
	}
	return options, nil
}
