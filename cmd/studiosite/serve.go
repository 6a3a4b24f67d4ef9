package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httphandler "github.com/caffxin/studiosite/internal/adapter/driving/http"
	webhandler "github.com/caffxin/studiosite/internal/adapter/driving/web"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/config"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website over HTTP",
	Long:  "Serve the website, the contact form endpoint and the read-only JSON API until SIGINT or SIGTERM.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides STUDIOSITE_LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"base_path", cfg.BasePath,
		"site_url", cfg.SiteURL,
		"content_db", cfg.ContentDB,
		"reveal", cfg.Reveal,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Load content into the registry.
	s, err := loadSite(ctx, cfg)
	if err != nil {
		return err
	}

	// 4. Wire the contact relay and application services.
	contactRelay, relayMode := newRelay(cfg)
	contactSvc := application.NewContactService(contactRelay, cfg.NoticeDuration)
	healthSvc := application.NewHealthService(s.registry, s.source, relayMode)

	// 5. Create API handler and register API routes.
	base := basePath(cfg)
	mux := http.NewServeMux()
	apiHandler := httphandler.NewHandler(s.registry, s.navigator, healthSvc, slog.Default())
	httphandler.RegisterAPIRoutes(mux, apiHandler, base)

	// 6. Create web handler and register page routes.
	renderer := webhandler.NewRenderer(s.registry, s.navigator, s.composer, webhandler.SiteOptions{
		BasePath:       base,
		SiteURL:        cfg.SiteURL,
		Reveal:         cfg.Reveal,
		NoticeDuration: cfg.NoticeDuration,
	})
	webHandler := webhandler.NewHandler(renderer, contactSvc, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RelayTimeout + 15*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 7. Log startup complete.
	slog.Info("studiosite started",
		"listen_addr", cfg.ListenAddr,
		"base_path", string(base),
		"content_source", s.source,
		"relay", relayMode,
	)

	// 8. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	// 9. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	// 10. Log shutdown complete.
	slog.Info("shutdown complete")
	return nil
}
