package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/littleknowledge/internal/domain"
)

type PronounsBody struct {
	Categories []domain.PronounCategory `json:"categories"`
	Hints      []string                 `json:"hints"`
}

type ListPronounsOutput struct {
	Body *PronounsBody
}

type GetPronounCategoryInput struct {
	CategoryID string `path:"categoryID" maxLength:"64" doc:"Pronoun category ID, e.g. personal"`
}

type GetPronounCategoryOutput struct {
	Body *domain.PronounCategory
}

func RegisterPronounRoutes(api huma.API, src ContentSource) {
	huma.Register(api, huma.Operation{
		OperationID: "list-pronouns",
		Method:      http.MethodGet,
		Path:        "/pronouns",
		Summary:     "List pronoun categories with examples and learning hints",
		Tags:        []string{"Pronouns"},
	}, func(_ context.Context, _ *struct{}) (*ListPronounsOutput, error) {
		return &ListPronounsOutput{Body: &PronounsBody{
			Categories: src.PronounCategories(),
			Hints:      src.PronounHints(),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-pronoun-category",
		Method:      http.MethodGet,
		Path:        "/pronouns/{categoryID}",
		Summary:     "Get one pronoun category",
		Tags:        []string{"Pronouns"},
	}, func(_ context.Context, input *GetPronounCategoryInput) (*GetPronounCategoryOutput, error) {
		cat, err := src.PronounCategory(input.CategoryID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("pronoun category not found")
		}
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to load pronoun category", err)
		}
		return &GetPronounCategoryOutput{Body: &cat}, nil
	})
}
