package usecase

import (
	"context"

	"wordgraph/internal/modules/layout/domain"
	"wordgraph/internal/modules/layout/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
	"wordgraph/internal/modules/layout/service"
)

type Interactor struct {
	svc *service.LayoutService
}

func NewInteractor(svc *service.LayoutService) layoutin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(_ context.Context, input dto.StartInput) (layoutin.Session, error) {
	s, err := i.svc.NewSession(input)
	if err != nil {
		return nil, err
	}
	return sessionHandle{s: s}, nil
}

func (i *Interactor) Run(ctx context.Context, input dto.RunInput) (dto.FrameOutput, error) {
	s, err := i.svc.NewSession(input.Start)
	if err != nil {
		return dto.FrameOutput{}, err
	}
	frame, err := i.svc.Run(ctx, s, input.MaxTicks)
	return service.ToFrameOutput(frame), err
}

type sessionHandle struct {
	s *domain.Session
}

func (h sessionHandle) Tick() dto.FrameOutput  { return service.ToFrameOutput(h.s.Tick()) }
func (h sessionHandle) Frame() dto.FrameOutput { return service.ToFrameOutput(h.s.Frame()) }
func (h sessionHandle) Running() bool          { return h.s.Running() }

func (h sessionHandle) DragStart(node int) error          { return h.s.DragStart(node) }
func (h sessionHandle) Drag(node int, x, y float64) error { return h.s.Drag(node, x, y) }
func (h sessionHandle) DragEnd(node int) error            { return h.s.DragEnd(node) }
func (h sessionHandle) HoverEnter(node int) error         { return h.s.HoverEnter(node) }
func (h sessionHandle) HoverLeave()                       { h.s.HoverLeave() }

func (h sessionHandle) NodeAt(x, y float64, radius func(weight int) float64) (int, bool) {
	return h.s.NodeAt(x, y, radius)
}

func (h sessionHandle) Index(name string) (int, bool) { return h.s.Index(name) }
