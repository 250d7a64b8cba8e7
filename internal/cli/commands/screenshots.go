package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/piper-lan/piper-site/internal/cli/output"
	"github.com/piper-lan/piper-site/pkg/carousel"
	"github.com/spf13/cobra"
)

// ScreenshotsOptions holds options for the screenshots command.
type ScreenshotsOptions struct {
	Strict bool
}

// ScreenshotInfo is one row of the screenshots report.
type ScreenshotInfo struct {
	Index       int                   `json:"index"`
	Label       string                `json:"label"`
	Source      string                `json:"source"`
	Status      string                `json:"status"`
	Asset       *carousel.Asset       `json:"asset,omitempty"`
	Placeholder *carousel.Placeholder `json:"placeholder,omitempty"`
	Error       string                `json:"error,omitempty"`
}

// ScreenshotsOutput is the JSON form of the report.
type ScreenshotsOutput struct {
	Root    string           `json:"root"`
	Items   []ScreenshotInfo `json:"items"`
	Missing int              `json:"missing"`
}

// Screenshot statuses.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
)

// NewScreenshotsCommand creates the screenshots command.
func NewScreenshotsCommand() *cobra.Command {
	opts := &ScreenshotsOptions{}

	cmd := &cobra.Command{
		Use:   "screenshots",
		Short: "List carousel screenshots and whether their images load",
		Long: `List every carousel item in display order with the state of its image.

Missing or undecodable images are shown with the placeholder hint the page
draws in their place.`,
		Example: `  # Show the table
  piper-site screenshots

  # Check a custom assets directory and fail if anything is missing
  piper-site screenshots --assets-dir ./public --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScreenshots(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with an error when a screenshot is missing")

	return cmd
}

func runScreenshots(cmd *cobra.Command, opts *ScreenshotsOptions) error {
	cc := NewCommandContext(cmd)

	report, err := collectScreenshots(cmd.Context(), cc)
	if err != nil {
		return err
	}

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(report); err != nil {
			return err
		}
	case output.ModeMarkdown:
		screenshotsMarkdown(r, report)
	default:
		screenshotsText(r, report)
	}

	if opts.Strict && report.Missing > 0 {
		return fmt.Errorf("%d of %d screenshots missing", report.Missing, len(report.Items))
	}
	return nil
}

func collectScreenshots(ctx context.Context, cc *CommandContext) (ScreenshotsOutput, error) {
	c, err := cc.NewCarousel()
	if err != nil {
		return ScreenshotsOutput{}, err
	}
	loader, root := cc.Loader()

	report := ScreenshotsOutput{Root: root, Items: make([]ScreenshotInfo, 0, c.Len())}
	for i, item := range c.Items() {
		s := c.SlideAt(ctx, loader, root, i)
		info := ScreenshotInfo{
			Index:       i,
			Label:       item.Label,
			Source:      item.Source,
			Status:      StatusOK,
			Asset:       s.Asset,
			Placeholder: s.Placeholder,
		}
		if s.Failed() {
			info.Status = StatusMissing
			info.Error = s.Err.Error()
			report.Missing++
			cc.Logger.Debug("screenshot failed to load", "source", item.Source, "error", s.Err)
		}
		report.Items = append(report.Items, info)
	}
	return report, nil
}

func screenshotsTable(report ScreenshotsOutput, status func(ScreenshotInfo) string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Label", "Source", "Status", "Details"})
	for _, s := range report.Items {
		details := ""
		if s.Asset != nil {
			details = fmt.Sprintf("%s %d×%d", s.Asset.Format, s.Asset.Width, s.Asset.Height)
		} else if s.Placeholder != nil {
			details = s.Placeholder.Hint
		}
		t.AppendRow(table.Row{strconv.Itoa(s.Index + 1), s.Label, s.Source, status(s), details})
	}
	return t
}

func screenshotsText(r *output.Renderer, report ScreenshotsOutput) {
	styles := r.Styles()
	r.Header(1, fmt.Sprintf("Screenshots (%d)", len(report.Items)))

	t := screenshotsTable(report, func(s ScreenshotInfo) string {
		if s.Status == StatusOK {
			return styles.Success.Render(s.Status)
		}
		return styles.Error.Render(s.Status)
	})
	t.SetOutputMirror(r.Out())
	t.Render()

	if report.Missing > 0 {
		r.Muted(fmt.Sprintf("%d missing; add images under %s", report.Missing, report.Root))
		return
	}
	r.Success("All screenshots load")
}

func screenshotsMarkdown(r *output.Renderer, report ScreenshotsOutput) {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Screenshots (%d)", len(report.Items))))
	r.Println("")
	r.Println(output.FormatKeyValue("Root", report.Root))
	r.Println(output.FormatKeyValue("Missing", strconv.Itoa(report.Missing)))
	r.Println("")

	t := screenshotsTable(report, func(s ScreenshotInfo) string { return s.Status })
	r.Println(t.RenderMarkdown())
}
