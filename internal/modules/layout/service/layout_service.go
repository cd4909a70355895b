package service

import (
	"context"
	"fmt"

	"wordgraph/internal/modules/layout/domain"
	"wordgraph/internal/modules/layout/dto"
	layoutout "wordgraph/internal/modules/layout/port/out"
	apperrors "wordgraph/internal/platform/errors"
)

type LayoutService struct {
	sink layoutout.TickSink
}

func NewLayoutService(sink layoutout.TickSink) *LayoutService {
	return &LayoutService{sink: sink}
}

func (s *LayoutService) NewSession(input dto.StartInput) (*domain.Session, error) {
	mode, err := parseDistance(input.Distance)
	if err != nil {
		return nil, err
	}
	g := domain.Graph{
		Names:   make([]string, 0, len(input.Graph.Nodes)),
		Weights: make([]int, 0, len(input.Graph.Nodes)),
		Springs: make([]domain.Spring, 0, len(input.Graph.Links)),
	}
	for _, n := range input.Graph.Nodes {
		g.Names = append(g.Names, n.Name)
		g.Weights = append(g.Weights, n.Weight)
	}
	for _, l := range input.Graph.Links {
		g.Springs = append(g.Springs, domain.Spring{Source: l.Source, Target: l.Target, Weight: l.Weight})
	}
	return domain.NewSession(g, domain.Config{
		Width:     input.Width,
		Height:    input.Height,
		MarginTop: input.MarginTop,
		Distance:  mode,
		Seed:      input.Seed,
	})
}

// Run ticks the session until it cools or maxTicks is reached, handing every
// frame to the sink. maxTicks <= 0 means no cap.
func (s *LayoutService) Run(ctx context.Context, session *domain.Session, maxTicks int) (domain.Frame, error) {
	frame := session.Frame()
	for ticks := 0; session.Running() && (maxTicks <= 0 || ticks < maxTicks); ticks++ {
		if err := ctx.Err(); err != nil {
			return frame, err
		}
		frame = session.Tick()
		if s.sink == nil {
			continue
		}
		if err := s.sink.OnTick(ctx, ToFrameOutput(frame)); err != nil {
			return frame, fmt.Errorf("tick %d: %w", frame.Tick, err)
		}
	}
	return frame, nil
}

func ToFrameOutput(f domain.Frame) dto.FrameOutput {
	out := dto.FrameOutput{
		Tick:    f.Tick,
		Alpha:   f.Alpha,
		Running: f.Running,
		Focus:   f.Focus,
		Nodes:   make([]dto.NodeFrame, 0, len(f.Nodes)),
		Links:   make([]dto.LinkFrame, 0, len(f.Links)),
	}
	for _, n := range f.Nodes {
		out.Nodes = append(out.Nodes, dto.NodeFrame{
			Name:    n.Name,
			Weight:  n.Weight,
			X:       n.X,
			Y:       n.Y,
			Pinned:  n.Pinned,
			Opacity: n.Opacity,
			Focused: n.Focused,
		})
	}
	for _, l := range f.Links {
		out.Links = append(out.Links, dto.LinkFrame{Source: l.Source, Target: l.Target, Weight: l.Weight, Opacity: l.Opacity})
	}
	return out
}

func parseDistance(v string) (domain.DistanceMode, error) {
	switch domain.DistanceMode(v) {
	case "", domain.DistanceAdditive:
		return domain.DistanceAdditive, nil
	case domain.DistanceInverse:
		return domain.DistanceInverse, nil
	default:
		return "", fmt.Errorf("%w: link distance %q", apperrors.ErrInvalidInput, v)
	}
}
