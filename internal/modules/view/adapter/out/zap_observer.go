package out

import (
	"context"

	"go.uber.org/zap"

	viewout "wordgraph/internal/modules/view/port/out"
)

type ZapObserver struct {
	logger *zap.Logger
}

func NewZapObserver(logger *zap.Logger) viewout.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger.Named("view")}
}

func (o *ZapObserver) LoadFailed(_ context.Context, uri string, err error) {
	o.logger.Error("load failure",
		zap.String("source", uri),
		zap.Error(err),
	)
}

func (o *ZapObserver) UnknownTheme(_ context.Context, name string, err error) {
	o.logger.Warn("unknown theme",
		zap.String("theme", name),
		zap.Error(err),
	)
}

func (o *ZapObserver) SceneBuilt(_ context.Context, generation int, threshold float64, theme string, nodes, links int) {
	o.logger.Debug("scene built",
		zap.Int("generation", generation),
		zap.Float64("threshold", threshold),
		zap.String("theme", theme),
		zap.Int("nodes", nodes),
		zap.Int("links", links),
	)
}
