package main

import (
	"io"

	"github.com/db47h/nucleus"
	"github.com/db47h/nucleus/shader"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type windowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FullScreen bool   `yaml:"fullScreen"`
	VSync      bool   `yaml:"vsync"`
	Title      string `yaml:"title"`
}

type config struct {
	Window windowConfig `yaml:"window"`
	// Profile overrides the profile of the GL context when set.
	Profile *nucleus.Profile  `yaml:"profile"`
	Sprites int               `yaml:"sprites"`
	Offsets shader.OffsetMode `yaml:"offsets"`
	Atlas   string            `yaml:"atlas"`
	Workers int               `yaml:"workers"`
	Model   string            `yaml:"model"`
}

func defaultConfig() config {
	return config{
		Window:  windowConfig{Width: 1280, Height: 720, VSync: true, Title: "nucleus sprites"},
		Sprites: 10000,
		Offsets: shader.Static,
		Atlas:   "walk",
		Workers: 4,
	}
}

func loadConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrap(err, "decode config")
	}
	if cfg.Sprites <= 0 {
		return cfg, errors.Errorf("invalid sprite count %d", cfg.Sprites)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, errors.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}
