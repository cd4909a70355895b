package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	graphinadapter "wordgraph/internal/modules/graph/adapter/in"
	graphoutadapter "wordgraph/internal/modules/graph/adapter/out"
	graphservice "wordgraph/internal/modules/graph/service"
	graphusecase "wordgraph/internal/modules/graph/usecase"
	layoutinadapter "wordgraph/internal/modules/layout/adapter/in"
	layoutoutadapter "wordgraph/internal/modules/layout/adapter/out"
	layoutservice "wordgraph/internal/modules/layout/service"
	layoutusecase "wordgraph/internal/modules/layout/usecase"
	matrixinadapter "wordgraph/internal/modules/matrix/adapter/in"
	matrixoutadapter "wordgraph/internal/modules/matrix/adapter/out"
	matrixservice "wordgraph/internal/modules/matrix/service"
	matrixusecase "wordgraph/internal/modules/matrix/usecase"
	viewinadapter "wordgraph/internal/modules/view/adapter/in"
	viewoutadapter "wordgraph/internal/modules/view/adapter/out"
	viewdomain "wordgraph/internal/modules/view/domain"
	viewservice "wordgraph/internal/modules/view/service"
	viewusecase "wordgraph/internal/modules/view/usecase"
	"wordgraph/internal/platform/clock"
	"wordgraph/internal/platform/config"
	uiapp "wordgraph/internal/ui/app"
)

// layoutLogEvery is how often a headless layout run logs progress.
const layoutLogEvery = 50

type App struct {
	Config    config.Config
	Logger    *zap.Logger
	MatrixCLI matrixinadapter.CLIHandler
	GraphCLI  graphinadapter.CLIHandler
	LayoutCLI layoutinadapter.CLIHandler
	ViewTUI   viewinadapter.TUIHandler
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}

	reader := matrixoutadapter.NewRouter(
		matrixoutadapter.NewHTTPSource(&http.Client{Timeout: 30 * time.Second}),
		matrixoutadapter.NewFileSource(),
		matrixoutadapter.NewSQLiteSource(),
	)
	matrixUC := matrixusecase.NewInteractor(matrixservice.NewMatrixService(clk, reader, matrixoutadapter.NewZapObserver(logger)))

	graphUC := graphusecase.NewInteractor(graphservice.NewGraphService(graphoutadapter.NewMatrixProvider(matrixUC)))

	layoutUC := layoutusecase.NewInteractor(layoutservice.NewLayoutService(layoutoutadapter.NewZapSink(logger, layoutLogEvery)))

	initialTheme, err := viewdomain.ParseTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	initial, err := viewdomain.NewViewState(cfg.Threshold, initialTheme)
	if err != nil {
		return nil, err
	}
	ctrl, err := viewservice.NewController(cfg.Source, initial, cfg.ThresholdStep, viewservice.Deps{
		Loader:  viewoutadapter.NewMatrixLoader(matrixUC),
		Reducer: viewoutadapter.NewReducer(graphUC),
		Layouts: viewoutadapter.NewLayouts(layoutUC, viewoutadapter.Geometry{
			Width:     cfg.Width,
			Height:    cfg.Height,
			MarginTop: cfg.MarginTop,
			Distance:  cfg.LinkDistance,
			Seed:      cfg.Seed,
		}),
		Observer: viewoutadapter.NewZapObserver(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("new view controller: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		MatrixCLI: matrixinadapter.NewCLIHandler(matrixUC),
		GraphCLI:  graphinadapter.NewCLIHandler(graphUC),
		LayoutCLI: layoutinadapter.NewCLIHandler(layoutUC, layoutinadapter.Geometry{
			Width:     cfg.Width,
			Height:    cfg.Height,
			MarginTop: cfg.MarginTop,
			Distance:  cfg.LinkDistance,
			Seed:      cfg.Seed,
		}),
		ViewTUI: viewinadapter.NewTUIHandler(viewusecase.NewInteractor(ctrl)),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Config.Source, app.ViewTUI, app.Config.Width, app.Config.Height)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}
