package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"wordgraph/internal/bootstrap"
	graphdto "wordgraph/internal/modules/graph/dto"
	"wordgraph/internal/platform/config"
	"wordgraph/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	configPath string
	source     string
	threshold  float64
	theme      string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "wordgraph",
		Short:         "Force-directed word co-occurrence graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.source, "source", "", "similarity matrix URI (http(s), file or sqlite)")
	flags.Float64Var(&opts.threshold, "threshold", 0, "minimum similarity for a link, in [0,1]")
	flags.StringVar(&opts.theme, "theme", "", "colour theme: Galaxy or Classic")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newMatrixCmd(opts))
	root.AddCommand(newReduceCmd(opts))
	root.AddCommand(newLayoutCmd(opts))
	root.AddCommand(newThemesCmd(opts))
	return root
}

// loadConfig reads the config file and overlays the flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.New(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = opts.source
	}
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	return cfg, cfg.Validate()
}

func loadApp(cmd *cobra.Command, opts *options, tui bool) (*bootstrap.App, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	logPath := cfg.LogFile
	if logPath == "" && tui {
		logPath = logging.DefaultTUIPath()
	}
	logger, err := logging.New(cfg.LogLevel, logPath)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return app, nil
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive graph viewer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newMatrixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Load the similarity matrix and describe it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			out, err := app.MatrixCLI.Load(cmd.Context(), app.Config.Source)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "source: %s\nterms: %d\nnon-numeric cells: %d\n", out.Source, len(out.Terms), out.NaNCells)
			return nil
		},
	}
}

func newReduceCmd(opts *options) *cobra.Command {
	var asJSON bool
	reduce := &cobra.Command{
		Use:   "reduce",
		Short: "Reduce the matrix to nodes and links at the threshold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			graph, err := reduceGraph(cmd.Context(), app)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, graph)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, graph.Title)
			_, _ = fmt.Fprintf(out, "%s (threshold %.2f, max weight %d)\n", graph.Subtitle, graph.Threshold, graph.MaxWeight)
			for _, l := range graph.Links {
				_, _ = fmt.Fprintf(out, "  %s -> %s  %.4f\n", l.SourceName, l.TargetName, l.Weight)
			}
			return nil
		},
	}
	reduce.Flags().BoolVar(&asJSON, "json", false, "print the graph as JSON")
	return reduce
}

func newLayoutCmd(opts *options) *cobra.Command {
	var maxTicks int
	layout := &cobra.Command{
		Use:   "layout",
		Short: "Run the force layout headless and print node positions as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			graph, err := reduceGraph(cmd.Context(), app)
			if err != nil {
				return err
			}
			ticks := app.Config.MaxTicks
			if cmd.Flags().Changed("max-ticks") {
				ticks = maxTicks
			}
			frame, err := app.LayoutCLI.Run(cmd.Context(), graph, ticks)
			if err != nil {
				return err
			}
			return writeJSON(cmd, frame)
		},
	}
	layout.Flags().IntVar(&maxTicks, "max-ticks", 0, "tick cap, 0 runs until the layout cools")
	return layout
}

func newThemesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the colour themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			for _, name := range app.ViewTUI.Themes() {
				marker := " "
				if name == app.Config.Theme {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func reduceGraph(ctx context.Context, app *bootstrap.App) (graphdto.GraphOutput, error) {
	if _, err := app.MatrixCLI.Load(ctx, app.Config.Source); err != nil {
		return graphdto.GraphOutput{}, err
	}
	return app.GraphCLI.Reduce(ctx, app.Config.Threshold)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
