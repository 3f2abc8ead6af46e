// Package render turns the content catalog into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/gosuda/littleknowledge/internal/content"
	"github.com/gosuda/littleknowledge/internal/domain"
	"github.com/gosuda/littleknowledge/internal/scroll"
)

//go:embed templates/*.html
var templateFS embed.FS

// Static assets the scroll-to-top button loads. Both are produced by
// go generate ./web.
const (
	ScrollTopWasm = "scrolltop.wasm"
	WasmExecJS    = "wasm_exec.js"
)

// ScrollTopAssets lists the assets a page with the scroll-to-top button
// cannot work without.
func ScrollTopAssets() []string {
	return []string{ScrollTopWasm, WasmExecJS}
}

// Source is the content the renderer reads. *content.Catalog satisfies it.
type Source interface {
	Modules() []domain.Module
	Pages() []domain.Page
	Page(path string) (domain.Page, error)
	PronounCategories() []domain.PronounCategory
	PronounHints() []string
	ClusterRows(pos domain.ClusterPosition) ([]domain.ClusterRow, error)
	MemoryTips() []domain.Tip
	PracticeSteps() []domain.PracticeStep
}

// Options controls URL generation and the document language.
type Options struct {
	BasePath    string       // prepended to every internal link
	AssetPrefix string       // prepended to static asset URLs; BasePath+"/" when empty
	Lang        language.Tag // content.Lang when unset
}

// Renderer renders pages. It is safe for concurrent use.
type Renderer struct {
	src      Source
	opts     Options
	pages    map[string]*template.Template
	notFound *template.Template
}

type pageData struct {
	Lang      string
	Page      domain.Page
	Body      any
	ScrollTop *scrollTopData
}

type scrollTopData struct {
	Threshold float64
	WasmURL   string
	ExecURL   string
}

type homeBody struct {
	Modules []domain.Module
}

type pronounsBody struct {
	Categories []domain.PronounCategory
	Hints      []string
}

type clusterTable struct {
	Position domain.ClusterPosition
	Heading  string
	Note     string
	Rows     []domain.ClusterRow
}

type clustersBody struct {
	Tables []clusterTable
	Tips   []domain.Tip
	Steps  []domain.PracticeStep
}

// page template files keyed by route path.
var pageFiles = map[string]string{
	content.PathHome:              "templates/home.html",
	content.PathPronouns:          "templates/pronouns.html",
	content.PathConsonantClusters: "templates/clusters.html",
}

// New parses every page template up front so rendering never fails on a
// template syntax error at request time.
func New(src Source, opts Options) (*Renderer, error) {
	if opts.Lang == language.Und {
		opts.Lang = content.Lang
	}

	r := &Renderer{
		src:   src,
		opts:  opts,
		pages: make(map[string]*template.Template, len(pageFiles)),
	}

	layout, err := template.New("site").Funcs(r.funcs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("render.New: parse layout: %w", err)
	}

	for path, file := range pageFiles {
		t, err := r.parsePage(layout, file)
		if err != nil {
			return nil, fmt.Errorf("render.New: %w", err)
		}
		r.pages[path] = t
	}

	r.notFound, err = r.parsePage(layout, "templates/notfound.html")
	if err != nil {
		return nil, fmt.Errorf("render.New: %w", err)
	}

	return r, nil
}

func (r *Renderer) parsePage(layout *template.Template, file string) (*template.Template, error) {
	clone, err := layout.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layout for %s: %w", file, err)
	}
	t, err := clone.ParseFS(templateFS, file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return t, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"link":  r.Link,
		"asset": r.Asset,
		"odd":   func(i int) bool { return i%2 == 1 },
	}
}

// Link returns the site URL for an internal route path.
func (r *Renderer) Link(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.opts.BasePath + path
}

// Asset returns the URL of a static asset.
func (r *Renderer) Asset(name string) string {
	prefix := r.opts.AssetPrefix
	if prefix == "" {
		prefix = r.opts.BasePath + "/"
	}
	return prefix + "static/" + strings.TrimPrefix(name, "/")
}

// Lang returns the BCP 47 tag pages are rendered with.
func (r *Renderer) Lang() string {
	return r.opts.Lang.String()
}

// Paths returns the route paths the renderer can serve, in catalog order.
func (r *Renderer) Paths() []string {
	pages := r.src.Pages()
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if _, ok := r.pages[p.Path]; ok {
			out = append(out, p.Path)
		}
	}
	return out
}

// Render writes the page for path to w. It returns domain.ErrNotFound for an
// unknown path. The page is buffered so a failed render writes nothing.
func (r *Renderer) Render(w io.Writer, path string) error {
	path = CanonicalPath(path)

	t, ok := r.pages[path]
	if !ok {
		return fmt.Errorf("render.Render %q: %w", path, domain.ErrNotFound)
	}

	page, err := r.src.Page(path)
	if err != nil {
		return fmt.Errorf("render.Render: %w", err)
	}

	data := pageData{Lang: r.Lang(), Page: page}
	switch path {
	case content.PathHome:
		data.Body = homeBody{Modules: r.src.Modules()}
	case content.PathPronouns:
		data.Body = pronounsBody{
			Categories: r.src.PronounCategories(),
			Hints:      r.src.PronounHints(),
		}
		data.ScrollTop = &scrollTopData{
			Threshold: scroll.Threshold,
			WasmURL:   r.Asset(ScrollTopWasm),
			ExecURL:   r.Asset(WasmExecJS),
		}
	case content.PathConsonantClusters:
		body, err := r.clustersBody()
		if err != nil {
			return fmt.Errorf("render.Render: %w", err)
		}
		data.Body = body
	}

	return execute(w, t, data)
}

// RenderNotFound writes the 404 page to w.
func (r *Renderer) RenderNotFound(w io.Writer) error {
	data := pageData{Lang: r.Lang(), Page: domain.Page{
		Path:        "/404",
		Title:       "404 · " + content.SiteName,
		Description: "页面不存在。",
	}}
	return execute(w, r.notFound, data)
}

func (r *Renderer) clustersBody() (clustersBody, error) {
	initial, err := r.src.ClusterRows(domain.ClusterPositionInitial)
	if err != nil {
		return clustersBody{}, err
	}
	final, err := r.src.ClusterRows(domain.ClusterPositionFinal)
	if err != nil {
		return clustersBody{}, err
	}

	return clustersBody{
		Tables: []clusterTable{
			{
				Position: domain.ClusterPositionInitial,
				Heading:  "开头的辅音连缀（Initial Consonant Clusters）",
				Note:     "多个辅音组合在一个音节的开头时，要连读为一个整体音节。",
				Rows:     initial,
			},
			{
				Position: domain.ClusterPositionFinal,
				Heading:  "结尾的辅音连缀（Final Consonant Clusters）",
				Note:     "多个辅音组合在音节结尾时，同样要一口气连读，不可拆开。",
				Rows:     final,
			},
		},
		Tips:  r.src.MemoryTips(),
		Steps: r.src.PracticeSteps(),
	}, nil
}

func execute(w io.Writer, t *template.Template, data pageData) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render: execute %s: %w", data.Page.Path, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", data.Page.Path, err)
	}
	return nil
}

// CanonicalPath strips a trailing slash so "/pronouns/" and "/pronouns"
// name the same page.
func CanonicalPath(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	return path
}
