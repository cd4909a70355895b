package in

import (
	"context"

	graphdto "wordgraph/internal/modules/graph/dto"
	"wordgraph/internal/modules/layout/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
)

// Geometry is the canvas a layout runs on.
type Geometry struct {
	Width     float64
	Height    float64
	MarginTop float64
	Distance  string
	Seed      uint64
}

type CLIHandler struct {
	usecase layoutin.Usecase
	geo     Geometry
}

func NewCLIHandler(usecase layoutin.Usecase, geo Geometry) CLIHandler {
	return CLIHandler{usecase: usecase, geo: geo}
}

func (h CLIHandler) Start(ctx context.Context, graph graphdto.GraphOutput) (layoutin.Session, error) {
	return h.usecase.Start(ctx, h.input(graph))
}

func (h CLIHandler) Run(ctx context.Context, graph graphdto.GraphOutput, maxTicks int) (dto.FrameOutput, error) {
	return h.usecase.Run(ctx, dto.RunInput{Start: h.input(graph), MaxTicks: maxTicks})
}

func (h CLIHandler) input(graph graphdto.GraphOutput) dto.StartInput {
	return dto.StartInput{
		Graph:     graph,
		Width:     h.geo.Width,
		Height:    h.geo.Height,
		MarginTop: h.geo.MarginTop,
		Distance:  h.geo.Distance,
		Seed:      h.geo.Seed,
	}
}
