package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "wordgraph/internal/platform/errors"
)

const DefaultSource = "https://raw.githubusercontent.com/ansegura7/NLP/master/data/network/sparse_similarity.csv"

const (
	LinkDistanceAdditive = "additive"
	LinkDistanceInverse  = "inverse"
)

type Config struct {
	Source        string  `yaml:"source"`
	Threshold     float64 `yaml:"threshold"`
	Theme         string  `yaml:"theme"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MarginTop     float64 `yaml:"margin_top"`
	LinkDistance  string  `yaml:"link_distance"`
	ThresholdStep float64 `yaml:"threshold_step"`
	MaxTicks      int     `yaml:"max_ticks"`
	Seed          uint64  `yaml:"seed"`
	LogLevel      string  `yaml:"log_level"`
	LogFile       string  `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Source:        DefaultSource,
		Threshold:     0.98,
		Theme:         "Galaxy",
		Width:         1000,
		Height:        800,
		MarginTop:     30,
		LinkDistance:  LinkDistanceAdditive,
		ThresholdStep: 0.01,
		MaxTicks:      300,
		Seed:          1,
		LogLevel:      "info",
	}
}

// New returns the defaults overlaid with the YAML file at path, if any.
func New(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Source) == "":
		return fmt.Errorf("%w: source is required", apperrors.ErrInvalidInput)
	case c.Threshold < 0 || c.Threshold > 1:
		return fmt.Errorf("%w: threshold %v outside [0,1]", apperrors.ErrInvalidInput, c.Threshold)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %vx%v must be positive", apperrors.ErrInvalidInput, c.Width, c.Height)
	case c.MarginTop < 0 || c.MarginTop >= c.Height:
		return fmt.Errorf("%w: margin_top %v", apperrors.ErrInvalidInput, c.MarginTop)
	case c.LinkDistance != LinkDistanceAdditive && c.LinkDistance != LinkDistanceInverse:
		return fmt.Errorf("%w: link_distance %q", apperrors.ErrInvalidInput, c.LinkDistance)
	case c.ThresholdStep <= 0 || c.ThresholdStep > 1:
		return fmt.Errorf("%w: threshold_step %v", apperrors.ErrInvalidInput, c.ThresholdStep)
	case c.MaxTicks <= 0:
		return fmt.Errorf("%w: max_ticks %d", apperrors.ErrInvalidInput, c.MaxTicks)
	}
	return nil
}
