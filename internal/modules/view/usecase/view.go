package usecase

import (
	"context"

	"wordgraph/internal/modules/view/domain"
	"wordgraph/internal/modules/view/dto"
	viewin "wordgraph/internal/modules/view/port/in"
	"wordgraph/internal/modules/view/service"
)

type Interactor struct {
	ctrl *service.Controller
}

func NewInteractor(ctrl *service.Controller) viewin.Usecase {
	return &Interactor{ctrl: ctrl}
}

func (i *Interactor) Load(ctx context.Context) (dto.Scene, error) {
	s, err := i.ctrl.Load(ctx)
	return i.mapScene(s), err
}

func (i *Interactor) Current() dto.Scene {
	return i.mapScene(i.ctrl.Current())
}

func (i *Interactor) SetThreshold(ctx context.Context, threshold float64) (dto.Scene, error) {
	s, err := i.ctrl.SetThreshold(ctx, threshold)
	return i.mapScene(s), err
}

func (i *Interactor) StepThreshold(ctx context.Context, steps int) (dto.Scene, error) {
	s, err := i.ctrl.StepThreshold(ctx, steps)
	return i.mapScene(s), err
}

func (i *Interactor) SetTheme(ctx context.Context, name string) (dto.Scene, error) {
	s, err := i.ctrl.SetTheme(ctx, name)
	return i.mapScene(s), err
}

func (i *Interactor) NextTheme(ctx context.Context) (dto.Scene, error) {
	s, err := i.ctrl.NextTheme(ctx)
	return i.mapScene(s), err
}

func (i *Interactor) Reset(ctx context.Context) (dto.Scene, error) {
	s, err := i.ctrl.Reset(ctx)
	return i.mapScene(s), err
}

func (i *Interactor) Themes() []string {
	all := domain.Themes()
	out := make([]string, 0, len(all))
	for _, t := range all {
		out = append(out, t.String())
	}
	return out
}

func (i *Interactor) mapScene(s service.Scene) dto.Scene {
	p := s.State.Theme.Palette()
	out := dto.Scene{
		Generation: s.Generation,
		Source:     i.ctrl.Source(),
		Threshold:  s.State.Threshold,
		Theme:      s.State.Theme.String(),
		MaxWeight:  s.State.MaxWeight,
		Title:      s.Graph.Title,
		Subtitle:   s.Graph.Subtitle,
		Palette: dto.PaletteOutput{
			Background: p.Background,
			Text:       p.Text,
			Link:       p.Link,
			Stroke:     p.Stroke,
		},
		Styles:  make([]dto.NodeStyle, 0, len(s.Graph.Nodes)),
		Radii:   make(map[int]float64, len(s.Graph.Nodes)),
		Graph:   s.Graph,
		Session: s.Session,
	}
	for _, n := range s.Graph.Nodes {
		st := domain.StyleNode(s.State.Theme, n.Weight, s.State.MaxWeight)
		out.Styles = append(out.Styles, dto.NodeStyle{Radius: st.Radius, Fill: st.Fill})
		out.Radii[n.Weight] = st.Radius
	}
	return out
}
