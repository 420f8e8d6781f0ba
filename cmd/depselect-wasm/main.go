//go:build js && wasm

package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-depselect/internal/dom"
	"github.com/goliatone/go-depselect/pkg/depselect"
	"github.com/goliatone/go-depselect/pkg/lookup"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "depselect-wasm").Logger()

	source := dom.ByID(dom.SourceID)
	dependent := dom.ByID(dom.DependentID)
	if !source.Found() || !dependent.Found() {
		logger.Debug().Msg("depselect: selects not on page, nothing to bind")
		return
	}

	var opts []lookup.Option
	if path := strings.TrimSpace(dependent.Attribute("data-lookup-url")); path != "" {
		opts = append(opts, lookup.WithPath(path))
	}
	client := lookup.New(dom.Origin(), opts...)

	controller := depselect.New(source, dependent, client,
		depselect.WithContext(context.Background()),
		depselect.WithLogger(logger),
		depselect.WithMessages(depselect.MessagesForLocale(dom.Lang())),
	)
	if !controller.Initialize() {
		return
	}

	select {}
}
