// Package build exports every edition as static HTML files.
package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/markz-studio/markz/internal/logging"
	"github.com/markz-studio/markz/internal/site"
)

// Options control a static export.
type Options struct {
	OutDir string
	Site   *site.Site
	// Editions limits the export. Empty means every edition.
	Editions []string
	// Public, when set, is copied flat into OutDir.
	Public fs.FS
}

// Export writes <out>/index.html for the default edition,
// <out>/editions/<name>/index.html for each edition and the editions index,
// then copies public assets. It returns the written paths in order. The
// printed date is the date of the export.
func Export(ctx context.Context, opts Options) ([]string, error) {
	if opts.Site == nil {
		return nil, fmt.Errorf("export: no site")
	}
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: empty output directory")
	}

	catalog := opts.Site.Catalog()
	names := opts.Editions
	if len(names) == 0 {
		names = catalog.Names()
	}
	for _, name := range names {
		if _, ok := catalog.Edition(name); !ok {
			return nil, fmt.Errorf("export: %w: %q", site.ErrUnknownEdition, name)
		}
	}

	logger := logging.FromContext(ctx)
	var written []string

	write := func(rel string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(opts.OutDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Info("wrote file", "path", dst, "bytes", len(data))
		written = append(written, dst)
		return nil
	}

	if def := catalog.DefaultName(); slices.Contains(names, def) {
		page, err := opts.Site.Render(def, nil, "/")
		if err != nil {
			return written, fmt.Errorf("export: %w", err)
		}
		if err := write("index.html", page.HTML); err != nil {
			return written, err
		}
	}

	for _, name := range names {
		page, err := opts.Site.Render(name, nil, "/editions/"+name)
		if err != nil {
			return written, fmt.Errorf("export: %w", err)
		}
		if err := write("editions/"+name+"/index.html", page.HTML); err != nil {
			return written, err
		}
	}

	index := opts.Site.Renderer().RenderEditions(opts.Site.Version(), opts.Site.Editions("/editions"))
	if err := write("editions/index.html", index); err != nil {
		return written, err
	}

	if opts.Public != nil {
		if err := copyPublic(opts.Public, write); err != nil {
			return written, err
		}
	}

	return written, nil
}

// copyPublic copies the top-level regular files of public, skipping dotfiles.
func copyPublic(public fs.FS, write func(string, []byte) error) error {
	entries, err := fs.ReadDir(public, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("export: read public dir: %w", err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		data, err := fs.ReadFile(public, e.Name())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := write(e.Name(), data); err != nil {
			return err
		}
	}
	return nil
}
