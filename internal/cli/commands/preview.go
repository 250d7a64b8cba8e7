package commands

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/piper-lan/piper-site/internal/tui"
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the screenshots carousel in the terminal",
		Long: `Open the screenshots carousel in the terminal.

Keys: ←/h previous, →/l next, tab next, 1-9 jump to a screenshot, q quit.
Missing images show the same placeholder hint as the web page.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			if !cc.Renderer.IsTTY() {
				return errors.New("preview needs an interactive terminal")
			}

			c, err := cc.NewCarousel()
			if err != nil {
				return err
			}
			loader, root := cc.Loader()

			cc.Logger.Debug("starting preview", "items", c.Len(), "root", root)
			return tui.Run(cmd.Context(), c, loader, root,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}
