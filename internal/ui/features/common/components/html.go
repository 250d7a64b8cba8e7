// Package components holds the shared page components.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup to an underlying writer, keeping the first error.
// Text and attribute values are escaped; Raw writes verbatim.
type HTML struct {
	w   io.Writer
	err error
}

// Component adapts a render function into a templ.Component.
func Component(fn func(ctx context.Context, h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &HTML{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Raw writes s as-is.
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes s escaped for element content.
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Open writes a start tag. attrs are name/value pairs; an empty name skips
// the pair so callers can drop attributes conditionally.
func (h *HTML) Open(tag string, attrs ...string) {
	h.Raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == "" {
			continue
		}
		h.Raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	h.Raw(">")
}

// Close writes an end tag.
func (h *HTML) Close(tag string) {
	h.Raw("</" + tag + ">")
}

// Element writes a start tag, escaped text and the end tag.
func (h *HTML) Element(tag, text string, attrs ...string) {
	h.Open(tag, attrs...)
	h.Text(text)
	h.Close(tag)
}

// Render renders a nested component into the same writer.
func (h *HTML) Render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// When returns name if cond holds, else "". Use it as an attribute name in
// Open to emit boolean or conditional attributes.
func When(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}
