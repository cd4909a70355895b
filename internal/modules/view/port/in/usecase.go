package in

import (
	"context"

	"wordgraph/internal/modules/view/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.Scene, error)
	Current() dto.Scene
	SetThreshold(ctx context.Context, threshold float64) (dto.Scene, error)
	StepThreshold(ctx context.Context, steps int) (dto.Scene, error)
	SetTheme(ctx context.Context, name string) (dto.Scene, error)
	NextTheme(ctx context.Context) (dto.Scene, error)
	Reset(ctx context.Context) (dto.Scene, error)
	Themes() []string
}
