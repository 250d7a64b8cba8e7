package commands

import (
	"log/slog"

	"github.com/piper-lan/piper-site/internal/assets"
	"github.com/piper-lan/piper-site/internal/cli/config"
	"github.com/piper-lan/piper-site/internal/cli/output"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/internal/ui"
	"github.com/piper-lan/piper-site/pkg/carousel"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// Loader returns the screenshot loader and the hint root for placeholders.
func (c *CommandContext) Loader() (carousel.Loader, string) {
	return assets.NewFSLoader(ui.MediaFS(c.Cfg.AssetsDir)), ui.AssetsRoot(c.Cfg.AssetsDir)
}

// NewCarousel mounts a carousel over the site's screenshots.
func (c *CommandContext) NewCarousel() (*carousel.Carousel, error) {
	return carousel.New(site.Screenshots(), carousel.WithDuration(c.Cfg.Transition))
}

// getConfig returns the current configuration, or defaults when none was
// loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
