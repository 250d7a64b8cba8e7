package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/charmbracelet/glamour"
	"github.com/piper-lan/piper-site/internal/cli/output"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/internal/ui/features/home"
	"github.com/piper-lan/piper-site/internal/ui/features/home/pages"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Format string
	Out    string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the landing page to HTML or Markdown",
		Long: `Render the landing page once, without live updates, and write it out.

HTML output is the full document as served. Markdown output converts the
page body, skipping interactive controls.`,
		Example: `  # Print the page as Markdown
  piper-site export --format markdown

  # Write a static HTML snapshot
  piper-site export --out index.html`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "html", "Output format (html|markdown)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write to file instead of stdout")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"html", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cc := NewCommandContext(cmd)

	if opts.Format != "html" && opts.Format != "markdown" && opts.Format != "md" {
		return fmt.Errorf("unknown format %q (want html or markdown)", opts.Format)
	}

	doc, err := renderPage(cmd.Context(), cc)
	if err != nil {
		return err
	}

	out := doc
	if opts.Format != "html" {
		md, err := PageMarkdown(doc)
		if err != nil {
			return err
		}
		out = []byte(md)
		if opts.Out == "" && cc.Renderer.IsTTY() && cc.Renderer.EffectiveMode() == output.ModeText {
			out = []byte(styleMarkdown(cc, md))
		}
	}

	if opts.Out != "" {
		if err := os.WriteFile(opts.Out, out, 0o644); err != nil { //nolint:gosec // exported page is public
			return fmt.Errorf("failed to write %s: %w", opts.Out, err)
		}
		cc.Logger.Debug("page exported", "path", opts.Out, "format", opts.Format, "bytes", len(out))
		cc.Renderer.Success(fmt.Sprintf("Exported %s to %s", opts.Format, opts.Out))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// renderPage renders the full document around a carousel that is mounted
// only for the duration of the render.
func renderPage(ctx context.Context, cc *CommandContext) ([]byte, error) {
	c, err := cc.NewCarousel()
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	inst := reg.Mount("export", c)
	defer reg.Unmount(inst.ID)

	loader, root := cc.Loader()
	view := home.BuildPage(ctx, site.Default(), inst, loader, root, false)

	var buf bytes.Buffer
	if err := pages.HomePage(view).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

// skipped elements carry no readable content.
var skipped = map[string]bool{
	"script": true,
	"svg":    true,
}

// PageMarkdown converts the <main> element of a rendered page to Markdown.
func PageMarkdown(doc []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	body := findElement(root, "main")
	if body == nil {
		return "", fmt.Errorf("page has no <main> element")
	}
	prune(body)

	var b strings.Builder
	if err := html.Render(&b, body); err != nil {
		return "", fmt.Errorf("failed to render page body: %w", err)
	}

	md, err := htmltomarkdown.ConvertString(b.String())
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

// findElement returns the first element named tag under n.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// prune removes elements with no meaning in a static document: images
// drawn as icons, content hidden from readers, and controls that call the
// server.
func prune(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && (skipped[c.Data] || attr(c, "aria-hidden") == "true" || serverAction(c)) {
			n.RemoveChild(c)
		} else {
			prune(c)
		}
		c = next
	}
}

func serverAction(n *html.Node) bool {
	return n.Data == "button" && strings.HasPrefix(attr(n, "data-on:click"), "@")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// styleMarkdown renders md for the terminal, falling back to the raw text.
func styleMarkdown(cc *CommandContext, md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		cc.Logger.Debug("markdown styling unavailable", "error", err)
		return md
	}
	styled, err := r.Render(md)
	if err != nil {
		cc.Logger.Debug("markdown styling failed", "error", err)
		return md
	}
	return styled
}
