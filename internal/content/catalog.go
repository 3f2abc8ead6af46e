// Package content holds the site's compiled-in educational content and the
// page registry built from it.
package content

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"

	"github.com/gosuda/littleknowledge/internal/domain"
)

// Route paths for every page the site renders.
const (
	PathHome              = "/"
	PathPronouns          = "/pronouns"
	PathConsonantClusters = "/consonant-clusters"
)

// SiteName is appended to every page title.
const SiteName = "Little Knowledge"

// Lang is the language the content is written in.
var Lang = language.MustParse("zh-CN")

var modules = []domain.Module{
	{
		Slug:        "pronouns",
		Href:        PathPronouns,
		Title:       "英语代词",
		Description: "详解人称、物主、反身等代词用法",
	},
	{
		Slug:        "consonant-clusters",
		Href:        PathConsonantClusters,
		Title:       "辅音连缀",
		Description: "常见 Consonant Blends 分类与示例",
	},
}

var pages = []domain.Page{
	{
		Path:        PathHome,
		Title:       SiteName,
		Description: "汇集常用但易被忽视的英语知识点，持续更新中。",
	},
	{
		Path:        PathPronouns,
		Title:       "英语代词 · " + SiteName,
		Description: "英语人称、物主、反身、指示、疑问、不定代词分类与用法详解。",
	},
	{
		Path:        PathConsonantClusters,
		Title:       "辅音连缀 · " + SiteName,
		Description: "常见英语辅音连缀（Consonant Blends）分类与例词示例。",
	},
}

// Catalog serves read-only views of the compiled-in content. Every accessor
// returns a copy so callers cannot mutate shared state.
type Catalog struct{}

// NewCatalog returns the site content catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Modules returns the topic cards shown on the landing page.
func (c *Catalog) Modules() []domain.Module {
	return slices.Clone(modules)
}

// Pages returns every rendered page in navigation order.
func (c *Catalog) Pages() []domain.Page {
	return slices.Clone(pages)
}

// Page returns the metadata for path, or domain.ErrNotFound.
func (c *Catalog) Page(path string) (domain.Page, error) {
	for _, p := range pages {
		if p.Path == path {
			return p, nil
		}
	}
	return domain.Page{}, fmt.Errorf("content.Page %q: %w", path, domain.ErrNotFound)
}

// PronounCategories returns all six categories, deep-copied.
func (c *Catalog) PronounCategories() []domain.PronounCategory {
	out := make([]domain.PronounCategory, len(pronounCategories))
	for i, cat := range pronounCategories {
		out[i] = cat.Clone()
	}
	return out
}

// PronounCategory returns the category with the given id, or
// domain.ErrNotFound.
func (c *Catalog) PronounCategory(id string) (domain.PronounCategory, error) {
	for _, cat := range pronounCategories {
		if cat.ID == id {
			return cat.Clone(), nil
		}
	}
	return domain.PronounCategory{}, fmt.Errorf("content.PronounCategory %q: %w", id, domain.ErrNotFound)
}

// PronounHints returns the study hints shown under the pronoun tables.
func (c *Catalog) PronounHints() []string {
	return slices.Clone(pronounHints)
}

// ClusterRows returns the example rows for pos, or domain.ErrNotFound for an
// unknown position.
func (c *Catalog) ClusterRows(pos domain.ClusterPosition) ([]domain.ClusterRow, error) {
	switch pos {
	case domain.ClusterPositionInitial:
		return slices.Clone(initialRows), nil
	case domain.ClusterPositionFinal:
		return slices.Clone(finalRows), nil
	}
	return nil, fmt.Errorf("content.ClusterRows %q: %w", pos, domain.ErrNotFound)
}

// MemoryTips returns the consonant-cluster memory tips.
func (c *Catalog) MemoryTips() []domain.Tip {
	return slices.Clone(memoryTips)
}

// PracticeSteps returns the ordered pronunciation practice steps.
func (c *Catalog) PracticeSteps() []domain.PracticeStep {
	return slices.Clone(practiceSteps)
}
