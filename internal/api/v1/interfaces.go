package v1

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/littleknowledge/internal/domain"
)

// ContentSource abstracts the content catalog for handler testing.
// *content.Catalog satisfies this interface.
type ContentSource interface {
	Modules() []domain.Module
	PronounCategories() []domain.PronounCategory
	PronounCategory(id string) (domain.PronounCategory, error)
	PronounHints() []string
	ClusterRows(pos domain.ClusterPosition) ([]domain.ClusterRow, error)
	MemoryTips() []domain.Tip
	PracticeSteps() []domain.PracticeStep
}

// RegisterContentRoutes registers every read-only content endpoint.
func RegisterContentRoutes(api huma.API, src ContentSource) {
	RegisterModuleRoutes(api, src)
	RegisterPronounRoutes(api, src)
	RegisterClusterRoutes(api, src)
}
