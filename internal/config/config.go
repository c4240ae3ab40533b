package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat     = "json"
	DefaultPlotWidth  = 70
	DefaultPlotHeight = 15
)

type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`
	Units  int    `yaml:"units"`

	// LegacyTail selects the historical placement of the final
	// parameter's block in the per-component sensitivity fallback.
	LegacyTail bool `yaml:"legacy_tail"`

	Plot PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Unit      int  `yaml:"unit"`
	Component int  `yaml:"component"`
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Deriv     bool `yaml:"deriv"`
}

func DefaultConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
