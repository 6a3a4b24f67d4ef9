package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caffxin/studiosite/internal/adapter/driven/content"
	"github.com/caffxin/studiosite/internal/adapter/driven/relay"
	sqliteadapter "github.com/caffxin/studiosite/internal/adapter/driven/sqlite"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/config"
	"github.com/caffxin/studiosite/internal/domain/model"
	"github.com/caffxin/studiosite/internal/domain/port/driven"
)

const (
	sourceEmbedded = "embedded"
	sourceSQLite   = "sqlite"
)

// site bundles the content services every command renders from.
type site struct {
	registry  *application.ContentRegistry
	navigator *application.Navigator
	composer  *application.PageComposer
	source    string
}

// loadSite reads the catalog from the configured source and builds the
// registry. The SQLite snapshot is opened read-only and closed after Load.
func loadSite(ctx context.Context, cfg *config.Config) (*site, error) {
	var (
		src    driven.ContentSource
		name   = sourceEmbedded
		closer func()
	)

	if cfg.UsesContentDB() {
		db, err := sqliteadapter.NewReadOnlyDB(cfg.ContentDB)
		if err != nil {
			return nil, fmt.Errorf("open content snapshot: %w", err)
		}
		closer = func() {
			if err := db.Close(); err != nil {
				slog.Error("error closing content snapshot", "error", err)
			}
		}
		src = sqliteadapter.NewContentRepo(db)
		name = sourceSQLite
	} else {
		src = content.NewEmbedded()
	}

	cat, err := src.Load(ctx)
	if closer != nil {
		closer()
	}
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", name, err)
	}

	registry, err := application.NewContentRegistry(cat)
	if err != nil {
		return nil, err
	}

	slog.Info("content loaded", "source", name, "services", len(cat.Services), "portfolio", len(cat.Portfolio), "faq", len(cat.FAQ))

	return &site{
		registry:  registry,
		navigator: application.NewNavigator(registry),
		composer:  application.NewPageComposer(registry),
		source:    name,
	}, nil
}

// newRelay returns the EmailJS relay when credentials are configured and a
// logging relay otherwise.
func newRelay(cfg *config.Config) (driven.ContactRelay, application.RelayMode) {
	if !cfg.HasRelayCredentials() {
		slog.Warn("email relay not configured, contact submissions will only be logged")
		return relay.NewLogRelay(slog.Default()), application.RelayModeLog
	}
	return relay.NewEmailJS(relay.EmailJSConfig{
		Endpoint:   cfg.RelayEndpoint,
		ServiceID:  cfg.RelayServiceID,
		TemplateID: cfg.RelayTemplateID,
		PublicKey:  cfg.RelayPublicKey,
		PrivateKey: cfg.RelayPrivateKey,
		Recipient:  cfg.ContactRecipient,
		Timeout:    cfg.RelayTimeout,
	}), application.RelayModeEmailJS
}

func basePath(cfg *config.Config) model.BasePath {
	return model.NewBasePath(cfg.BasePath)
}
