package usecase

import (
	"context"

	"wordgraph/internal/modules/graph/domain"
	"wordgraph/internal/modules/graph/dto"
	graphin "wordgraph/internal/modules/graph/port/in"
	"wordgraph/internal/modules/graph/service"
)

type Interactor struct {
	svc *service.GraphService
}

func NewInteractor(svc *service.GraphService) graphin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Reduce(ctx context.Context, input dto.ReduceInput) (dto.GraphOutput, error) {
	g, err := i.svc.Reduce(ctx, input.Threshold)
	if err != nil {
		return dto.GraphOutput{}, err
	}
	return dto.GraphOutput{
		Title:     domain.Title,
		Subtitle:  domain.Subtitle(len(g.Nodes), len(g.Links)),
		Threshold: g.Threshold,
		MaxWeight: g.MaxWeight,
		Nodes:     mapNodes(g.Nodes),
		Links:     mapLinks(g),
	}, nil
}

func mapNodes(nodes []domain.Node) []dto.NodeOutput {
	out := make([]dto.NodeOutput, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, dto.NodeOutput{
			Name:   node.Name,
			Group:  node.Group,
			Weight: node.Weight,
		})
	}
	return out
}

func mapLinks(g domain.Graph) []dto.LinkOutput {
	out := make([]dto.LinkOutput, 0, len(g.Links))
	for _, link := range g.Links {
		out = append(out, dto.LinkOutput{
			Source:     link.Source,
			Target:     link.Target,
			SourceName: g.Nodes[link.Source].Name,
			TargetName: g.Nodes[link.Target].Name,
			Weight:     link.Weight,
		})
	}
	return out
}
