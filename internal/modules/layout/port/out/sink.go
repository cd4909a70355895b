package out

import (
	"context"

	"wordgraph/internal/modules/layout/dto"
)

// TickSink receives every frame of a headless run.
type TickSink interface {
	OnTick(ctx context.Context, frame dto.FrameOutput) error
}
