package out

import (
	"context"
	"time"

	"go.uber.org/zap"

	matrixout "wordgraph/internal/modules/matrix/port/out"
)

type ZapObserver struct {
	logger *zap.Logger
}

func NewZapObserver(logger *zap.Logger) matrixout.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger.Named("matrix")}
}

func (o *ZapObserver) Loaded(_ context.Context, uri string, terms int, elapsed time.Duration) {
	o.logger.Info("matrix loaded",
		zap.String("source", uri),
		zap.Int("terms", terms),
		zap.Duration("elapsed", elapsed),
	)
}

// LoadFailed logs at debug; the view observer reports the failure.
func (o *ZapObserver) LoadFailed(_ context.Context, uri string, err error) {
	o.logger.Debug("matrix load failed",
		zap.String("source", uri),
		zap.Error(err),
	)
}
