package in

import (
	"context"

	"wordgraph/internal/modules/layout/dto"
)

// Session is a running layout of one graph. Node arguments are indices into
// the graph's node list.
type Session interface {
	Tick() dto.FrameOutput
	Frame() dto.FrameOutput
	Running() bool
	DragStart(node int) error
	Drag(node int, x, y float64) error
	DragEnd(node int) error
	HoverEnter(node int) error
	HoverLeave()
	NodeAt(x, y float64, radius func(weight int) float64) (int, bool)
	Index(name string) (int, bool)
}

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (Session, error)
	Run(ctx context.Context, input dto.RunInput) (dto.FrameOutput, error)
}
