package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/littleknowledge/internal/domain"
)

type ClustersBody struct {
	Initial []domain.ClusterRow   `json:"initial"`
	Final   []domain.ClusterRow   `json:"final"`
	Tips    []domain.Tip          `json:"tips"`
	Steps   []domain.PracticeStep `json:"steps"`
}

type ListClustersOutput struct {
	Body *ClustersBody
}

type GetClusterRowsInput struct {
	Position string `path:"position" maxLength:"16" doc:"Cluster position: initial or final"`
}

type GetClusterRowsOutput struct {
	Body []domain.ClusterRow
}

func RegisterClusterRoutes(api huma.API, src ContentSource) {
	huma.Register(api, huma.Operation{
		OperationID: "list-consonant-clusters",
		Method:      http.MethodGet,
		Path:        "/consonant-clusters",
		Summary:     "List initial and final consonant clusters with tips and practice steps",
		Tags:        []string{"Consonant Clusters"},
	}, func(_ context.Context, _ *struct{}) (*ListClustersOutput, error) {
		initial, err := src.ClusterRows(domain.ClusterPositionInitial)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to load initial clusters", err)
		}
		final, err := src.ClusterRows(domain.ClusterPositionFinal)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to load final clusters", err)
		}

		return &ListClustersOutput{Body: &ClustersBody{
			Initial: initial,
			Final:   final,
			Tips:    src.MemoryTips(),
			Steps:   src.PracticeSteps(),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-consonant-clusters-by-position",
		Method:      http.MethodGet,
		Path:        "/consonant-clusters/{position}",
		Summary:     "Get consonant clusters for one syllable position",
		Tags:        []string{"Consonant Clusters"},
	}, func(_ context.Context, input *GetClusterRowsInput) (*GetClusterRowsOutput, error) {
		pos, err := domain.ParseClusterPosition(input.Position)
		if err != nil {
			return nil, huma.Error404NotFound("unknown cluster position")
		}

		rows, err := src.ClusterRows(pos)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("unknown cluster position")
		}
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to load clusters", err)
		}
		return &GetClusterRowsOutput{Body: rows}, nil
	})
}
