package out_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	layoutout "wordgraph/internal/modules/layout/adapter/out"
	"wordgraph/internal/modules/layout/dto"
)

func TestZapSinkLogsSampledTicksAndCooling(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	sink := layoutout.NewZapSink(zap.New(core), 2)
	for tick := 1; tick <= 4; tick++ {
		if err := sink.OnTick(context.Background(), dto.FrameOutput{Tick: tick, Running: true}); err != nil {
			t.Fatalf("on tick: %v", err)
		}
	}
	if err := sink.OnTick(context.Background(), dto.FrameOutput{Tick: 5}); err != nil {
		t.Fatalf("on tick: %v", err)
	}
	if got := logs.FilterMessage("layout tick").Len(); got != 2 {
		t.Fatalf("expected 2 sampled ticks, got %d", got)
	}
	if got := logs.FilterMessage("layout cooled").Len(); got != 1 {
		t.Fatalf("expected one cooled entry, got %d", got)
	}
}
