package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/littleknowledge/internal/content"
	"github.com/gosuda/littleknowledge/internal/export"
	"github.com/gosuda/littleknowledge/internal/render"
)

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"site.css":     &fstest.MapFile{Data: []byte("body{}")},
		"loader.js":    &fstest.MapFile{Data: []byte("// loader")},
		"img/logo.svg": &fstest.MapFile{Data: []byte("<svg/>")},
	}
}

func newExporter(t *testing.T, opts export.Options) *export.Exporter {
	t.Helper()
	r, err := render.New(content.NewCatalog(), render.Options{BasePath: opts.BasePath})
	require.NoError(t, err)
	return export.New(r, testAssets(), opts)
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func TestExport_WritesSite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest, err := newExporter(t, export.Options{}).Export(context.Background(), dir)
	require.NoError(t, err)

	want := []string{
		".nojekyll",
		"404.html",
		"consonant-clusters/index.html",
		"index.html",
		"pronouns/index.html",
		"static/img/logo.svg",
		"static/loader.js",
		"static/site.css",
	}
	assert.Equal(t, want, manifest.Files)

	for _, f := range want {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
	}

	assert.Contains(t, readFile(t, filepath.Join(dir, "index.html")), "英语小知识导航")
	assert.Contains(t, readFile(t, filepath.Join(dir, "pronouns", "index.html")), "data-scroll-top")
	assert.Contains(t, readFile(t, filepath.Join(dir, "404.html")), "404")
	assert.Equal(t, "<svg/>", readFile(t, filepath.Join(dir, "static", "img", "logo.svg")))
	assert.Empty(t, readFile(t, filepath.Join(dir, ".nojekyll")))
}

func TestExport_Manifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest, err := newExporter(t, export.Options{BasePath: "/little-knowledge"}).Export(context.Background(), dir)
	require.NoError(t, err)

	_, err = uuid.Parse(manifest.BuildID)
	require.NoError(t, err)
	assert.False(t, manifest.GeneratedAt.IsZero())

	var onDisk export.Manifest
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(dir, export.ManifestFile))), &onDisk))
	assert.Equal(t, manifest.BuildID, onDisk.BuildID)
	assert.Equal(t, "/little-knowledge", onDisk.BasePath)
	assert.Equal(t, manifest.Files, onDisk.Files)

	assert.Contains(t, readFile(t, filepath.Join(dir, "index.html")), `href="/little-knowledge/pronouns"`)
}

func TestExport_BuildIDsDiffer(t *testing.T) {
	t.Parallel()

	e := newExporter(t, export.Options{})
	first, err := e.Export(context.Background(), t.TempDir())
	require.NoError(t, err)
	second, err := e.Export(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.NotEqual(t, first.BuildID, second.BuildID)
}

func TestExport_Clean(t *testing.T) {
	t.Parallel()

	t.Run("keeps stale files by default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stale := filepath.Join(dir, "stale.html")
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

		_, err := newExporter(t, export.Options{}).Export(context.Background(), dir)
		require.NoError(t, err)
		assert.FileExists(t, stale)
	})

	t.Run("removes stale files when set", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stale := filepath.Join(dir, "old", "stale.html")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

		_, err := newExporter(t, export.Options{Clean: true}).Export(context.Background(), dir)
		require.NoError(t, err)
		assert.NoFileExists(t, stale)
		assert.NoDirExists(t, filepath.Join(dir, "old"))
		assert.DirExists(t, dir)
		assert.FileExists(t, filepath.Join(dir, "index.html"))
	})

	t.Run("creates missing dir", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		_, err := newExporter(t, export.Options{Clean: true}).Export(context.Background(), dir)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "index.html"))
	})
}

func TestExport_EmptyDir(t *testing.T) {
	t.Parallel()

	_, err := newExporter(t, export.Options{}).Export(context.Background(), "")
	require.Error(t, err)
}

func TestExport_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := newExporter(t, export.Options{}).Export(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, export.ManifestFile))
}

// brokenRenderer fails one page so the error path can be observed.
type brokenRenderer struct{}

func (brokenRenderer) Paths() []string { return []string{"/", "/broken"} }

func (brokenRenderer) Render(w io.Writer, path string) error {
	if path == "/broken" {
		return errors.New("template exploded")
	}
	_, err := io.WriteString(w, "<html></html>")
	return err
}

func (brokenRenderer) RenderNotFound(w io.Writer) error {
	_, err := io.WriteString(w, "404")
	return err
}

func TestExport_RenderError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := export.New(brokenRenderer{}, nil, export.Options{}).Export(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template exploded")
	assert.Contains(t, err.Error(), "broken/index.html")
	assert.NoFileExists(t, filepath.Join(dir, export.ManifestFile))
}

func TestExport_NilAssets(t *testing.T) {
	t.Parallel()

	r, err := render.New(content.NewCatalog(), render.Options{})
	require.NoError(t, err)

	manifest, err := export.New(r, nil, export.Options{}).Export(context.Background(), t.TempDir())
	require.NoError(t, err)
	for _, f := range manifest.Files {
		assert.NotContains(t, f, "static/")
	}
}

func TestExport_RequiredAssets(t *testing.T) {
	t.Parallel()

	required := render.ScrollTopAssets()

	t.Run("missing assets are reported", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		manifest, err := newExporter(t, export.Options{RequiredAssets: required}).Export(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"scrolltop.wasm", "wasm_exec.js"}, manifest.MissingAssets)

		var onDisk export.Manifest
		require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(dir, export.ManifestFile))), &onDisk))
		assert.Equal(t, manifest.MissingAssets, onDisk.MissingAssets)
	})

	t.Run("strict fails before writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := newExporter(t, export.Options{RequiredAssets: required, Strict: true}).Export(context.Background(), dir)
		require.ErrorIs(t, err, export.ErrMissingAsset)
		assert.Contains(t, err.Error(), "scrolltop.wasm")
		assert.NoFileExists(t, filepath.Join(dir, "index.html"))
	})

	t.Run("present assets pass strict", func(t *testing.T) {
		t.Parallel()

		assets := testAssets()
		assets["scrolltop.wasm"] = &fstest.MapFile{Data: []byte("\x00asm")}
		assets["wasm_exec.js"] = &fstest.MapFile{Data: []byte("// go")}

		r, err := render.New(content.NewCatalog(), render.Options{})
		require.NoError(t, err)

		dir := t.TempDir()
		manifest, err := export.New(r, assets, export.Options{RequiredAssets: required, Strict: true}).Export(context.Background(), dir)
		require.NoError(t, err)
		assert.Empty(t, manifest.MissingAssets)
		assert.FileExists(t, filepath.Join(dir, "static", "scrolltop.wasm"))
	})

	t.Run("nil assets miss everything", func(t *testing.T) {
		t.Parallel()

		r, err := render.New(content.NewCatalog(), render.Options{})
		require.NoError(t, err)

		manifest, err := export.New(r, nil, export.Options{RequiredAssets: required}).Export(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, required, manifest.MissingAssets)
	})
}
