package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/google/uuid"
	"github.com/piper-lan/piper-site/internal/cli/config"
	"github.com/piper-lan/piper-site/internal/ui"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command. They reach the server
// through the config layer, which gives explicitly set flags the last word.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		Long: `Start a local web server for the Piper landing page.

Each page load mounts its own screenshots carousel. Tabs, arrows and dots
post to the server, which streams the updated carousel back over SSE. With
--watch, adding or replacing screenshots updates open pages in place.`,
		Example: `  # Serve on the default port
  piper-site serve

  # Serve on a custom port without opening a browser
  piper-site serve --port 3000 --no-browser

  # Serve screenshots from a local directory
  piper-site serve --assets-dir ./public`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), NewCommandContext(cmd))
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, fmt.Sprintf("Port to serve on (default: %d)", config.DefaultPort))
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the assets directory for changes")

	return cmd
}

func runServe(ctx context.Context, cc *CommandContext) error {
	cfg := cc.Cfg

	server := ui.NewServer(ServerConfig(cc))

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if cfg.Server.AutoOpen {
		go openBrowser(ctx, url)
	}

	cc.Renderer.Success("Serving " + url)
	cc.Renderer.Muted("Press Ctrl+C to stop")

	return server.Serve(ctx)
}

// ServerConfig maps the CLI configuration onto the web server's.
func ServerConfig(cc *CommandContext) ui.Config {
	cfg := cc.Cfg
	return ui.Config{
		Port:               cfg.Server.Port,
		Watch:              cfg.Server.Watch,
		SessionSecret:      sessionSecret(cfg),
		Logger:             cc.Logger,
		AssetsDir:          cfg.AssetsDir,
		TransitionDuration: cfg.Transition,
		SweepInterval:      cfg.Server.SweepInterval,
		IdleTimeout:        cfg.Server.IdleTimeout,
	}
}

// sessionSecret returns the configured secret or a random one. A random
// secret invalidates visitor cookies on restart, which only orphans
// carousels that are gone anyway.
func sessionSecret(cfg *config.Config) string {
	if cfg.Server.SessionSecret != "" {
		return cfg.Server.SessionSecret
	}
	return uuid.NewString() + uuid.NewString()
}

// openBrowser opens url in the default browser.
func openBrowser(ctx context.Context, url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return
	}

	_ = cmd.Start()
}
