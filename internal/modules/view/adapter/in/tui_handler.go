package in

import (
	"context"

	"wordgraph/internal/modules/view/dto"
	viewin "wordgraph/internal/modules/view/port/in"
)

// TUIHandler is the surface the terminal UI drives the view through.
type TUIHandler struct {
	usecase viewin.Usecase
}

func NewTUIHandler(usecase viewin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Load(ctx context.Context) (dto.Scene, error) { return h.usecase.Load(ctx) }

func (h TUIHandler) Current() dto.Scene { return h.usecase.Current() }

func (h TUIHandler) SetThreshold(ctx context.Context, v float64) (dto.Scene, error) {
	return h.usecase.SetThreshold(ctx, v)
}

func (h TUIHandler) StepThreshold(ctx context.Context, steps int) (dto.Scene, error) {
	return h.usecase.StepThreshold(ctx, steps)
}

func (h TUIHandler) SetTheme(ctx context.Context, name string) (dto.Scene, error) {
	return h.usecase.SetTheme(ctx, name)
}

func (h TUIHandler) NextTheme(ctx context.Context) (dto.Scene, error) {
	return h.usecase.NextTheme(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) (dto.Scene, error) { return h.usecase.Reset(ctx) }

func (h TUIHandler) Themes() []string { return h.usecase.Themes() }
