package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-depselect/internal/config"
	"github.com/goliatone/go-depselect/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to depselect.yaml (optional)")
	wasmDir := flag.String("wasm-dir", "", "directory holding depselect.wasm and wasm_exec.js, served under /runtime/")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logging.New(logging.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr).
		Msg("starting depselect server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer closeStore()

	manifest, err := loadTheme(cfg.UI.ThemeFile, cfg.UI.ThemeVariant)
	if err != nil {
		log.Fatal().Err(err).Msg("load theme")
	}

	router, err := newRouter(routerDeps{
		Store:        store,
		Logger:       log,
		BasePath:     cfg.HTTP.BasePath,
		Locale:       cfg.App.Locale,
		WasmDir:      *wasmDir,
		Theme:        manifest,
		ThemeVariant: cfg.UI.ThemeVariant,
		TemplatesDir: cfg.UI.TemplatesDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
