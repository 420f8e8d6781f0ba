package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/goliatone/go-depselect/internal/config"
	"github.com/goliatone/go-depselect/internal/logging"
	"github.com/goliatone/go-depselect/pkg/depselect"
	"github.com/goliatone/go-depselect/pkg/lookup"
	"github.com/goliatone/go-depselect/pkg/renderers/tui"
)

func main() {
	configPath := flag.String("config", "", "path to depselect.yaml (optional)")
	endpoint := flag.String("url", "", "origin of the box lookup endpoint (defaults to LOOKUP_URL)")
	warehouses := flag.String("warehouses", "", `comma separated warehouses as "id=address"; defaults to the configured store`)
	timeout := flag.Duration("timeout", 10*time.Second, "timeout for each box lookup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options, err := warehouseOptions(ctx, cfg, *warehouses)
	if err != nil {
		log.Fatal().Err(err).Msg("load warehouses")
	}

	base := strings.TrimSpace(*endpoint)
	if base == "" {
		base = cfg.Lookup.URL
	}
	client := lookup.New(base)

	prompts := tui.DefaultPrompts()
	if depselect.MatchLocale(cfg.App.Locale) == "ru" {
		prompts = tui.RussianPrompts()
	}

	form := tui.NewForm(options, client,
		tui.WithMessages(depselect.MessagesForLocale(cfg.App.Locale)),
		tui.WithPrompts(prompts),
		tui.WithLogger(log),
		tui.WithTimeout(*timeout),
	)

	selection, err := form.Run(ctx)
	switch {
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		os.Exit(130)
	case errors.Is(err, tui.ErrNoSelectableOptions):
		fmt.Fprintln(os.Stderr, "no box selected")
		os.Exit(1)
	case err != nil:
		log.Fatal().Err(err).Msg("depselect form")
	}

	fmt.Printf("warehouse_id=%s box_id=%s\n", selection.Warehouse.Value, selection.Box.Value)
}
