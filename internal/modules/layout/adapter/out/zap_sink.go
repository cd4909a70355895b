package out

import (
	"context"

	"go.uber.org/zap"

	"wordgraph/internal/modules/layout/dto"
	layoutout "wordgraph/internal/modules/layout/port/out"
)

// ZapSink logs a headless run every Every ticks and when it cools.
type ZapSink struct {
	logger *zap.Logger
	every  int
}

func NewZapSink(logger *zap.Logger, every int) layoutout.TickSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	if every < 1 {
		every = 50
	}
	return &ZapSink{logger: logger.Named("layout"), every: every}
}

func (s *ZapSink) OnTick(_ context.Context, frame dto.FrameOutput) error {
	switch {
	case !frame.Running:
		s.logger.Info("layout cooled",
			zap.Int("tick", frame.Tick),
			zap.Float64("alpha", frame.Alpha),
			zap.Int("nodes", len(frame.Nodes)),
		)
	case frame.Tick%s.every == 0:
		s.logger.Debug("layout tick",
			zap.Int("tick", frame.Tick),
			zap.Float64("alpha", frame.Alpha),
		)
	}
	return nil
}
