package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/caffxin/studiosite/internal/adapter/driven/content"
	sqliteadapter "github.com/caffxin/studiosite/internal/adapter/driven/sqlite"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/config"
	"github.com/caffxin/studiosite/internal/domain/model"
)

var contentDBPath string

var contentDBCmd = &cobra.Command{
	Use:   "contentdb",
	Short: "Manage the SQLite content snapshot",
	Long:  "Build and inspect the SQLite snapshot that serve and export read instead of the embedded catalog when STUDIOSITE_CONTENT_DB is set.",
}

var contentDBImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Write the embedded catalog into the snapshot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runContentDBImport(cmd.Context())
	},
}

var contentDBInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the snapshot's schema version, import time and content counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runContentDBInfo(cmd.Context())
	},
}

func init() {
	contentDBCmd.PersistentFlags().StringVar(&contentDBPath, "db", "", "Snapshot path (overrides STUDIOSITE_CONTENT_DB)")
	contentDBCmd.AddCommand(contentDBImportCmd, contentDBInfoCmd)
	rootCmd.AddCommand(contentDBCmd)
}

func snapshotPath() (string, error) {
	if contentDBPath != "" {
		return contentDBPath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if !cfg.UsesContentDB() {
		return "", fmt.Errorf("no snapshot path: pass --db or set STUDIOSITE_CONTENT_DB")
	}
	return cfg.ContentDB, nil
}

func runContentDBImport(ctx context.Context) error {
	path, err := snapshotPath()
	if err != nil {
		return err
	}

	// 1. Load and validate the embedded catalog.
	cat, err := content.NewEmbedded().Load(ctx)
	if err != nil {
		return err
	}
	if _, err := application.NewContentRegistry(cat); err != nil {
		return err
	}

	// 2. Open the snapshot and bring its schema up to date.
	db, err := sqliteadapter.NewDB(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	version, err := sqliteadapter.RunMigrations(db.Writer)
	if err != nil {
		return err
	}
	slog.Info("migrations complete", "version", version)

	// 3. Replace the snapshot contents in one transaction.
	if err := sqliteadapter.NewContentRepo(db).Import(ctx, cat); err != nil {
		return err
	}

	fmt.Printf("Imported %d services, %d projects and %d FAQ entries into %s (schema v%d)\n",
		len(cat.Services), len(cat.Portfolio), len(cat.FAQ), path, version)
	return nil
}

func runContentDBInfo(ctx context.Context) error {
	path, err := snapshotPath()
	if err != nil {
		return err
	}

	db, err := sqliteadapter.NewReadOnlyDB(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	repo := sqliteadapter.NewContentRepo(db)
	importedAt, err := repo.ImportedAt(ctx)
	if err != nil {
		return err
	}
	cat, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	registry, err := application.NewContentRegistry(cat)
	if err != nil {
		return err
	}

	fmt.Printf("Snapshot:  %s\n", path)
	fmt.Printf("Imported:  %s\n", importedAt.Local().Format(time.RFC1123))
	counts := registry.Counts()
	for _, kind := range model.Kinds {
		fmt.Printf("%-13s %d\n", string(kind)+":", counts[kind])
	}
	return nil
}
