// Package output renders command output as styled text, markdown or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how commands format their results.
type OutputMode string //nolint:revive // output.OutputMode reads fine at call sites

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Modes lists the accepted mode names.
var Modes = []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}

// Mode converts a config string to an OutputMode. Unknown or empty values
// mean auto.
func Mode(s string) OutputMode {
	switch OutputMode(s) {
	case ModeText, ModeMarkdown, ModeJSON:
		return OutputMode(s)
	default:
		return ModeAuto
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}

	lr := lipgloss.NewRenderer(out)
	if r.EffectiveMode() != ModeText || !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	} else if isTTY && lr.ColorProfile() == termenv.Ascii {
		lr.SetColorProfile(termenv.ANSI256)
	}
	r.styles = NewStyles(lr)
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// EffectiveMode resolves auto: text on a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether stdout is a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Styles returns the styles for this renderer. Outside a terminal they
// render without escape codes.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Out returns the writer for regular output.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Println writes s followed by a newline.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Header writes a level 1 or 2 header.
func (r *Renderer) Header(level int, title string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, title))
		return
	}
	style := r.styles.Header1
	if level > 1 {
		style = r.styles.Header2
	}
	r.Println(style.Render(title))
}

// Success writes a success line.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("**" + msg + "**")
		return
	}
	r.Println(r.styles.Success.Render("✓ " + msg))
}

// Error writes an error line to the error stream.
func (r *Renderer) Error(msg string) {
	if r.EffectiveMode() == ModeText {
		_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
		return
	}
	_, _ = fmt.Fprintln(r.errOut, "Error: "+msg)
}

// Muted writes secondary information.
func (r *Renderer) Muted(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("_" + msg + "_")
		return
	}
	r.Println(r.styles.Muted.Render(msg))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
