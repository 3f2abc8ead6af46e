// Package export writes the rendered site as a static file tree suitable for
// GitHub Pages or any static host.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gosuda/littleknowledge/internal/domain"
)

const (
	ManifestFile = "build-manifest.json"
	NotFoundFile = "404.html"
	// NoJekyllFile stops GitHub Pages from running Jekyll, which would
	// otherwise drop underscore-prefixed paths.
	NoJekyllFile = ".nojekyll"
	StaticDir    = "static"
)

// PageRenderer renders the site's pages. *render.Renderer satisfies it.
type PageRenderer interface {
	Paths() []string
	Render(w io.Writer, path string) error
	RenderNotFound(w io.Writer) error
}

// ErrMissingAsset is returned in strict mode when a required asset is absent.
var ErrMissingAsset = errors.New("required static asset missing")

// Options configures an Exporter.
type Options struct {
	BasePath string

	// Clean empties the output directory before writing.
	Clean bool

	// RequiredAssets names files that must exist in the asset FS. Missing
	// ones are logged and listed in the manifest.
	RequiredAssets []string

	// Strict turns a missing required asset into ErrMissingAsset.
	Strict bool
}

// Manifest describes one export run. It is written to ManifestFile.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	BasePath    string    `json:"base_path"`
	Files       []string  `json:"files"`

	// MissingAssets lists required assets the export went ahead without.
	MissingAssets []string `json:"missing_assets,omitempty"`
}

// Exporter writes pages and static assets to a directory.
type Exporter struct {
	renderer PageRenderer
	assets   fs.FS
	opts     Options
	now      func() time.Time
}

// New creates an Exporter. assets may be nil when no static files are needed.
func New(renderer PageRenderer, assets fs.FS, opts Options) *Exporter {
	return &Exporter{
		renderer: renderer,
		assets:   assets,
		opts:     opts,
		now:      time.Now,
	}
}

// Export writes the full site to dir and returns the manifest it wrote.
// Pages and assets are written concurrently; the first failure cancels the
// rest and is returned.
func (e *Exporter) Export(ctx context.Context, dir string) (*Manifest, error) {
	if dir == "" {
		return nil, errors.New("export.Export: output dir is required")
	}

	missing := e.missingAssets()
	if len(missing) > 0 {
		if e.opts.Strict {
			return nil, fmt.Errorf("export.Export: %w: %s", ErrMissingAsset, strings.Join(missing, ", "))
		}
		log.Warn().
			Strs("assets", missing).
			Msg("required static assets missing, run go generate ./web")
	}

	if e.opts.Clean {
		if err := cleanDir(dir); err != nil {
			return nil, fmt.Errorf("export.Export: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export.Export: create %s: %w", dir, err)
	}

	var (
		mu    sync.Mutex
		files []string
	)
	record := func(rel string) {
		mu.Lock()
		files = append(files, rel)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, p := range e.renderer.Paths() {
		g.Go(func() error {
			rel := domain.Page{Path: p}.OutputFile()
			if err := e.writeRendered(gctx, dir, rel, func(w io.Writer) error {
				return e.renderer.Render(w, p)
			}); err != nil {
				return err
			}
			record(rel)
			return nil
		})
	}

	g.Go(func() error {
		if err := e.writeRendered(gctx, dir, NotFoundFile, e.renderer.RenderNotFound); err != nil {
			return err
		}
		record(NotFoundFile)
		return nil
	})

	if e.assets != nil {
		g.Go(func() error {
			copied, err := copyAssets(gctx, e.assets, filepath.Join(dir, StaticDir))
			if err != nil {
				return err
			}
			for _, c := range copied {
				record(path.Join(StaticDir, c))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("export.Export: %w", err)
	}

	if err := writeFile(ctx, filepath.Join(dir, NoJekyllFile), nil); err != nil {
		return nil, fmt.Errorf("export.Export: %w", err)
	}
	files = append(files, NoJekyllFile)
	slices.Sort(files)

	manifest := &Manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: e.now().UTC(),
		BasePath:    e.opts.BasePath,
		Files:       files,

		MissingAssets: missing,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export.Export: encode manifest: %w", err)
	}
	if err := writeFile(ctx, filepath.Join(dir, ManifestFile), append(data, '\n')); err != nil {
		return nil, fmt.Errorf("export.Export: %w", err)
	}

	log.Info().
		Str("dir", dir).
		Str("build_id", manifest.BuildID).
		Int("files", len(manifest.Files)).
		Msg("static export complete")

	return manifest, nil
}

func (e *Exporter) missingAssets() []string {
	var missing []string
	for _, name := range e.opts.RequiredAssets {
		if e.assets == nil {
			missing = append(missing, name)
			continue
		}
		if _, err := fs.Stat(e.assets, name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

func (e *Exporter) writeRendered(ctx context.Context, dir, rel string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}
	if err := writeFile(ctx, filepath.Join(dir, filepath.FromSlash(rel)), buf.Bytes()); err != nil {
		return err
	}
	log.Debug().Str("file", rel).Int("bytes", buf.Len()).Msg("page written")
	return nil
}

// copyAssets mirrors every regular file in assets under dest and returns the
// slash-separated paths it copied.
func copyAssets(ctx context.Context, assets fs.FS, dest string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}
		if err := writeFile(ctx, filepath.Join(dest, filepath.FromSlash(p)), data); err != nil {
			return err
		}
		copied = append(copied, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}
	return copied, nil
}

func writeFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil { //nolint:gosec // published site content
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// cleanDir removes everything inside dir but keeps dir itself. A missing dir
// is not an error.
func cleanDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if wd, err := os.Getwd(); err == nil && abs == wd {
		return fmt.Errorf("refusing to clean the working directory %s", abs)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("refusing to clean filesystem root %s", abs)
	}

	entries, err := os.ReadDir(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", abs, err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(abs, e.Name())); err != nil {
			return fmt.Errorf("clean %s: %w", abs, err)
		}
	}
	return nil
}
