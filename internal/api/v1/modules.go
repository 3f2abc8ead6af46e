package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/littleknowledge/internal/domain"
)

type ListModulesOutput struct {
	Body []domain.Module
}

func RegisterModuleRoutes(api huma.API, src ContentSource) {
	huma.Register(api, huma.Operation{
		OperationID: "list-modules",
		Method:      http.MethodGet,
		Path:        "/modules",
		Summary:     "List the topic modules linked from the landing page",
		Tags:        []string{"Modules"},
	}, func(_ context.Context, _ *struct{}) (*ListModulesOutput, error) {
		return &ListModulesOutput{Body: src.Modules()}, nil
	})
}
