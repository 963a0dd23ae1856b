package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gookit/color"

	"github.com/vk/issctl/internal/config"
	"github.com/vk/issctl/internal/opennotify"
	"github.com/vk/issctl/internal/render"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger   *slog.Logger
	client   *opennotify.Client
	renderer *render.Renderer
}

// New is the constructor for the main application. It configures the logger,
// loads the optional configuration file, and builds the API client and
// renderer. Flag settings in cfg win over file values.
func New(outW, errW io.Writer, cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("logger configured", "level", cfg.LogLevel, "format", cfg.LogFormat)

	fileCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		fileTimeout, err := fileCfg.ParseTimeout()
		if err != nil {
			return nil, fmt.Errorf("configuration: %w", err)
		}
		timeout = fileTimeout
	}

	if cfg.NoColor || fileCfg.NoColor {
		color.Disable()
	}

	var endpoints opennotify.Endpoints
	if fileCfg.Endpoints != nil {
		endpoints = opennotify.Endpoints{
			Location: fileCfg.Endpoints.Location,
			Passing:  fileCfg.Endpoints.Passing,
			People:   fileCfg.Endpoints.People,
		}
	}
	logger.Debug("configuration resolved", "timeout", timeout, "config_path", cfg.ConfigPath)

	return &App{
		logger:   logger,
		client:   opennotify.NewClient(endpoints, timeout),
		renderer: render.New(outW, errW),
	}, nil
}

// Renderer returns the application's renderer, so the entrypoint can report
// errors in the same style as results.
func (a *App) Renderer() *render.Renderer {
	return a.renderer
}
