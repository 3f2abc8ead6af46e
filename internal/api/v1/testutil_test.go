package v1_test

import (
	"github.com/gosuda/littleknowledge/internal/content"
	"github.com/gosuda/littleknowledge/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock ContentSource
// ---------------------------------------------------------------------------

// mockSource delegates to the real catalog unless a func override is set.
type mockSource struct {
	catalog *content.Catalog

	pronounCategoryFunc func(id string) (domain.PronounCategory, error)
	clusterRowsFunc     func(pos domain.ClusterPosition) ([]domain.ClusterRow, error)
}

func newMockSource() *mockSource {
	return &mockSource{catalog: content.NewCatalog()}
}

func (m *mockSource) Modules() []domain.Module { return m.catalog.Modules() }

func (m *mockSource) PronounCategories() []domain.PronounCategory {
	return m.catalog.PronounCategories()
}

func (m *mockSource) PronounCategory(id string) (domain.PronounCategory, error) {
	if m.pronounCategoryFunc != nil {
		return m.pronounCategoryFunc(id)
	}
	return m.catalog.PronounCategory(id)
}

func (m *mockSource) PronounHints() []string { return m.catalog.PronounHints() }

func (m *mockSource) ClusterRows(pos domain.ClusterPosition) ([]domain.ClusterRow, error) {
	if m.clusterRowsFunc != nil {
		return m.clusterRowsFunc(pos)
	}
	return m.catalog.ClusterRows(pos)
}

func (m *mockSource) MemoryTips() []domain.Tip { return m.catalog.MemoryTips() }

func (m *mockSource) PracticeSteps() []domain.PracticeStep { return m.catalog.PracticeSteps() }
