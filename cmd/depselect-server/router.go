package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	theme "github.com/goliatone/go-theme"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	runtimeassets "github.com/goliatone/go-depselect"
	"github.com/goliatone/go-depselect/components/boxes"
	"github.com/goliatone/go-depselect/pkg/depselect"
	"github.com/goliatone/go-depselect/pkg/renderers/html"
)

type routerDeps struct {
	Store    boxes.Store
	Logger   zerolog.Logger
	BasePath string
	Locale   string
	// WasmDir enables the browser controller on the demo page.
	WasmDir string
	// Theme tokens become CSS custom properties on the form.
	Theme        *theme.Manifest
	ThemeVariant string
	// TemplatesDir overrides the embedded form templates file by file.
	TemplatesDir string
}

const pageTemplate = `<!doctype html>
<html lang="%s">
<head><meta charset="utf-8"><title>%s</title>%s</head>
<body>
%s
</body>
</html>
`

func newRouter(deps routerDeps) (http.Handler, error) {
	lang := depselect.MatchLocale(deps.Locale)

	labels := boxes.DefaultLabelFormat()
	formLabels := html.DefaultLabels()
	if lang == "ru" {
		labels = boxes.RussianLabelFormat()
		formLabels = html.Labels{Warehouse: "Склад", Box: "Бокс", WarehousePrompt: "-- Выберите склад --"}
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(deps.Logger))
	r.Use(hlog.AccessHandler(func(req *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(req).Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("request_id", middleware.GetReqID(req.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"Accept", "X-Requested-With"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	component := boxes.New(
		boxes.WithStore(deps.Store),
		boxes.WithLabels(labels),
		boxes.WithLogger(deps.Logger),
	)
	pattern, err := component.RegisterRoutes(r, deps.BasePath)
	if err != nil {
		return nil, err
	}

	var scriptURL, headScripts string
	if dir := strings.TrimSpace(deps.WasmDir); dir != "" {
		r.Handle("/runtime/*", http.StripPrefix("/runtime/", http.FileServerFS(overlayFS{os.DirFS(dir), runtimeassets.RuntimeAssetsFS()})))
		scriptURL = "/runtime/depselect-loader.js"
		headScripts = `<script src="/runtime/wasm_exec.js"></script>`
	} else {
		r.Handle("/runtime/*", http.StripPrefix("/runtime/", http.FileServerFS(runtimeassets.RuntimeAssetsFS())))
	}

	renderOpts := []html.Option{
		html.WithMessages(depselect.MessagesForLocale(deps.Locale)),
		html.WithLabels(formLabels),
		html.WithTemplatesDir(deps.TemplatesDir),
	}
	if deps.Theme != nil {
		renderOpts = append(renderOpts, html.WithTheme(deps.Theme, deps.ThemeVariant))
	}
	renderer, err := html.New(renderOpts...)
	if err != nil {
		return nil, err
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		warehouses, err := deps.Store.Warehouses(req.Context())
		if err != nil {
			hlog.FromRequest(req).Error().Err(err).Msg("depselect: list warehouses")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		options := make([]depselect.Option, 0, len(warehouses))
		for _, wh := range warehouses {
			options = append(options, depselect.Option{Value: wh.ID, Label: wh.Address})
		}

		fragment, err := renderer.Form(html.Form{
			Warehouses: options,
			LookupURL:  pattern,
			ScriptURL:  scriptURL,
		})
		if err != nil {
			hlog.FromRequest(req).Error().Err(err).Msg("depselect: render form")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, pageTemplate, lang, formLabels.Box, headScripts, fragment)
	})

	return r, nil
}

// overlayFS serves the first layer that has the requested file.
type overlayFS []fs.FS

func (o overlayFS) Open(name string) (fs.File, error) {
	var firstErr error
	for _, layer := range o {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if firstErr == nil && !errors.Is(err, fs.ErrNotExist) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// requestID keeps an incoming X-Request-Id or assigns a UUID, exposing it to
// middleware.GetReqID and echoing it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimSpace(req.Header.Get(middleware.RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := context.WithValue(req.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
