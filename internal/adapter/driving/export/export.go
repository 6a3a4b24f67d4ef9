// Package export writes the site as static files: one index.html per route,
// a 404.html fallback page, the static assets and, when a site URL is
// configured, sitemap.xml and robots.txt.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/caffxin/studiosite/internal/adapter/driving/web"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// defaultWorkers bounds concurrent page renders.
const defaultWorkers = 4

// notFoundPath resolves to the fallback page written as 404.html.
const notFoundPath = "/404"

// Result summarizes one export run.
type Result struct {
	Pages  int
	Assets int
}

// Exporter renders every route of the site into a directory.
type Exporter struct {
	renderer  *web.Renderer
	navigator *application.Navigator
	assets    fs.FS
	workers   int
	logger    *slog.Logger
}

// New creates an Exporter. The renderer should be built with
// SiteOptions.Static set.
func New(renderer *web.Renderer, navigator *application.Navigator, logger *slog.Logger) *Exporter {
	return &Exporter{
		renderer:  renderer,
		navigator: navigator,
		assets:    web.Assets(),
		workers:   defaultWorkers,
		logger:    logger,
	}
}

// Export writes the site into dir, creating it if needed. Existing files
// with the same names are overwritten; nothing else in dir is touched.
func (e *Exporter) Export(ctx context.Context, dir string) (Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create export dir: %w", err)
	}

	var pages atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, route := range e.navigator.Routes() {
		g.Go(func() error {
			if err := e.writePage(gCtx, dir, route, pagePath(route.Path)); err != nil {
				return err
			}
			pages.Add(1)
			return nil
		})
	}

	g.Go(func() error {
		route := e.navigator.Resolve(notFoundPath)
		if err := e.writePage(gCtx, dir, route, "404.html"); err != nil {
			return err
		}
		pages.Add(1)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	assets, err := e.copyAssets(ctx, filepath.Join(dir, "static"))
	if err != nil {
		return Result{}, err
	}

	if err := e.writeSEO(dir); err != nil {
		return Result{}, err
	}

	res := Result{Pages: int(pages.Load()), Assets: assets}
	e.logger.Info("site exported", "dir", dir, "pages", res.Pages, "assets", res.Assets)
	return res, nil
}

func (e *Exporter) writePage(ctx context.Context, dir string, route model.Route, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := e.renderer.Render(ctx, &buf, route, web.RequestState{}); err != nil {
		return fmt.Errorf("export %s: %w", route.Path, err)
	}

	if err := writeFile(filepath.Join(dir, filepath.FromSlash(rel)), buf.Bytes()); err != nil {
		return fmt.Errorf("export %s: %w", route.Path, err)
	}
	e.logger.Debug("page exported", "path", route.Path, "file", rel)
	return nil
}

func (e *Exporter) copyAssets(ctx context.Context, dst string) (int, error) {
	n := 0
	err := fs.WalkDir(e.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(e.assets, p)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dst, filepath.FromSlash(p)), data); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copy static assets: %w", err)
	}
	return n, nil
}

func (e *Exporter) writeSEO(dir string) error {
	var robots bytes.Buffer
	if err := e.renderer.WriteRobots(&robots); err != nil {
		return fmt.Errorf("export robots.txt: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "robots.txt"), robots.Bytes()); err != nil {
		return fmt.Errorf("export robots.txt: %w", err)
	}

	if !e.renderer.HasSitemap() {
		return nil
	}
	var sitemap bytes.Buffer
	if err := e.renderer.WriteSitemap(&sitemap); err != nil {
		return fmt.Errorf("export sitemap.xml: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "sitemap.xml"), sitemap.Bytes()); err != nil {
		return fmt.Errorf("export sitemap.xml: %w", err)
	}
	return nil
}

// pagePath maps a route path to its file below the export root: "/" is
// index.html and "/about" is about/index.html.
func pagePath(routePath string) string {
	rel := strings.Trim(path.Clean(routePath), "/")
	if rel == "" || rel == "." {
		return "index.html"
	}
	return rel + "/index.html"
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}
