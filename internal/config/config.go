// Package config holds the settings of lfdmusic read from an optional yaml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.yaml.in/yaml/v3"

	"github.com/mrclmr/lfdmusic/internal/report"
)

type Config struct {
	LogLevel   slog.Level    `yaml:"log_level"`
	OutputDir  string        `yaml:"output_dir"`
	Format     report.Format `yaml:"format"`
	Playlist   bool          `yaml:"playlist"`
	Disclaimer bool          `yaml:"disclaimer"`
}

// Default returns the settings used without configuration file.
func Default() *Config {
	return &Config{
		LogLevel:   slog.LevelInfo,
		OutputDir:  ".",
		Format:     report.Text,
		Disclaimer: true,
	}
}

// Parse reads the configuration. Keys missing in r keep their default.
func Parse(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	c := Default()
	err := decoder.Decode(c)
	if errors.Is(err, io.EOF) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

type config Config

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	y := config(*c)
	err := node.Decode(&y)
	if err != nil {
		return err
	}
	if y.OutputDir == "" {
		return keyEmptyError("output_dir")
	}

	c.LogLevel = y.LogLevel
	c.OutputDir = y.OutputDir
	c.Format = y.Format
	c.Playlist = y.Playlist
	c.Disclaimer = y.Disclaimer
	return nil
}

func keyEmptyError(key string) error {
	return fmt.Errorf("key '%s' is missing or value is empty", key)
}
