package config

import (
	"encoding/json"
	"fmt"
	"os"

	"certgen/internal/render"
)

// Config represents the application configuration
type Config struct {
	Font    FontConfig    `json:"font"`
	Layout  LayoutConfig  `json:"layout"`
	Logging LoggingConfig `json:"logging"`
}

// FontConfig selects the TrueType face embedded into generated documents.
// An empty path keeps the built-in fallback face.
type FontConfig struct {
	Path   string `json:"path"`
	Family string `json:"family"`
}

// LayoutConfig represents page geometry and text defaults
type LayoutConfig struct {
	BaseSize    float64 `json:"base_size"`
	LineSpacing float64 `json:"line_spacing"`
	Margin      float64 `json:"margin"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	style := render.DefaultStyle()
	config := &Config{
		Font: FontConfig{
			Family: style.FontFamily,
		},
		Layout: LayoutConfig{
			BaseSize:    style.BaseSize,
			LineSpacing: style.LineSpacing,
			Margin:      style.Margin,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

// overrideWithEnv applies the one supported environment override: the
// font file location.
func overrideWithEnv(config *Config) {
	if path := os.Getenv("CERTGEN_FONT_PATH"); path != "" {
		config.Font.Path = path
	}
}

// Style resolves the configured font and layout into a render style.
func (c *Config) Style() (render.Style, error) {
	font, err := render.LoadFontFile(c.Font.Path)
	if err != nil {
		return render.Style{}, err
	}
	style := render.DefaultStyle()
	style.FontBytes = font
	if c.Font.Family != "" {
		style.FontFamily = c.Font.Family
	}
	if c.Layout.BaseSize > 0 {
		style.BaseSize = c.Layout.BaseSize
	}
	if c.Layout.LineSpacing > 0 {
		style.LineSpacing = c.Layout.LineSpacing
	}
	if c.Layout.Margin > 0 {
		style.Margin = c.Layout.Margin
	}
	return style, nil
}
