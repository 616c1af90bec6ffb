// Package config holds the service configuration, loaded from YAML
// over built-in defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pamelaitzel/copo-koch/internal/params"
	"github.com/pamelaitzel/copo-koch/internal/render"
)

const DefaultAddr = "127.0.0.1:5000"

type Config struct {
	Addr   string       `yaml:"addr"`
	Image  ImageConfig  `yaml:"image"`
	Figure FigureConfig `yaml:"figure"`
}

type ImageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FigureConfig sets the figure shown when a request carries no
// parameters of its own.
type FigureConfig struct {
	Figure    string  `yaml:"figure"`
	Order     int     `yaml:"order"`
	LineWidth float64 `yaml:"line_width"`
	Color1    string  `yaml:"color1"`
	Color2    string  `yaml:"color2"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr: DefaultAddr,
		Image: ImageConfig{
			Width:  render.DefaultWidth,
			Height: render.DefaultHeight,
		},
		Figure: FigureConfig{
			Figure:    params.DefaultFigure,
			Order:     params.DefaultOrder,
			LineWidth: params.DefaultLineWidth,
			Color1:    params.DefaultColor1,
			Color2:    params.DefaultColor2,
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
	cfg.sanitize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// sanitize pushes loaded values through the same clamps applied to
// request parameters, so a bad config cannot produce an invalid figure.
func (c *Config) sanitize() {
	c.Figure.Figure = params.ClampFigure(c.Figure.Figure)
	if c.Figure.Order < params.MinOrder {
		c.Figure.Order = params.MinOrder
	}
	if c.Figure.Order > params.MaxOrder {
		c.Figure.Order = params.MaxOrder
	}
	if c.Figure.LineWidth < params.MinLineWidth {
		c.Figure.LineWidth = params.MinLineWidth
	}
	if c.Figure.LineWidth > params.MaxLineWidth {
		c.Figure.LineWidth = params.MaxLineWidth
	}
	c.Figure.Color1 = params.HexColor(c.Figure.Color1, params.DefaultColor1)
	c.Figure.Color2 = params.HexColor(c.Figure.Color2, params.DefaultColor2)
}

// FigureParams converts the configured default figure to a validated
// parameter set.
func (c *Config) FigureParams() params.Params {
	return params.Params{
		Figure:    c.Figure.Figure,
		Order:     c.Figure.Order,
		LineWidth: c.Figure.LineWidth,
		Color1:    c.Figure.Color1,
		Color2:    c.Figure.Color2,
	}
}
