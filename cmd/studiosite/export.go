package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/caffxin/studiosite/internal/adapter/driving/export"
	webhandler "github.com/caffxin/studiosite/internal/adapter/driving/web"
	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/caffxin/studiosite/internal/config"
)

var (
	exportDir      string
	exportBasePath string
	exportSiteURL  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the website as static files",
	Long: "Render every page, the 404 page, the static assets and the sitemap into a directory " +
		"that any static host can serve. The exported contact form posts directly to EmailJS " +
		"when relay credentials are configured.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExport()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringVar(&exportBasePath, "base-path", "", "URL prefix the site is hosted under (overrides STUDIOSITE_BASE_PATH)")
	exportCmd.Flags().StringVar(&exportSiteURL, "site-url", "", "Absolute site origin for canonical links and the sitemap (overrides STUDIOSITE_SITE_URL)")
	rootCmd.AddCommand(exportCmd)
}

func runExport() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if exportBasePath != "" {
		cfg.BasePath = exportBasePath
	}
	if exportSiteURL != "" {
		cfg.SiteURL = exportSiteURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := loadSite(ctx, cfg)
	if err != nil {
		return err
	}

	opts := webhandler.SiteOptions{
		BasePath:       basePath(cfg),
		SiteURL:        cfg.SiteURL,
		Reveal:         cfg.Reveal,
		NoticeDuration: cfg.NoticeDuration,
		Static:         true,
	}
	if cfg.HasRelayCredentials() {
		opts.ClientRelay = &viewmodel.ClientRelay{
			Endpoint:   cfg.RelayEndpoint,
			ServiceID:  cfg.RelayServiceID,
			TemplateID: cfg.RelayTemplateID,
			PublicKey:  cfg.RelayPublicKey,
		}
	} else {
		slog.Warn("email relay not configured, the exported contact form will have no delivery target")
	}

	renderer := webhandler.NewRenderer(s.registry, s.navigator, s.composer, opts)
	res, err := export.New(renderer, s.navigator, slog.Default()).Export(ctx, exportDir)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, exportDir)
	return nil
}
