package components

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piper-lan/piper-site/internal/ui/features/common"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestHTML_EscapesTextAndAttributes(t *testing.T) {
	c := Component(func(_ context.Context, h *HTML) {
		h.Element("p", `<b>"hi"</b>`, "title", `a"b`, When(false, "hidden"), "", When(true, "disabled"), "")
	})

	out := render(t, c)
	assert.Equal(t, `<p title="a&#34;b" disabled="">&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</p>`, out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestHTML_KeepsFirstError(t *testing.T) {
	calls := 0
	c := Component(func(_ context.Context, h *HTML) {
		h.Raw("a")
		calls++
		h.Raw("b")
	})

	err := c.Render(context.Background(), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Equal(t, 1, calls)
}

func TestPage(t *testing.T) {
	body := Component(func(_ context.Context, h *HTML) { h.Element("main", "content") })

	tests := []struct {
		name    string
		data    common.PageData
		want    []string
		notWant []string
	}{
		{
			name: "production shell",
			data: common.PageData{Title: "Piper", Description: "LAN messenger"},
			want: []string{
				"<!doctype html>",
				"<title>Piper</title>",
				`<meta name="description" content="LAN messenger">`,
				`href="/static/site.css"`,
				"datastar.js",
				"<main>content</main>",
			},
			notWant: []string{"/reload"},
		},
		{
			name: "dev shell adds hot reload",
			data: common.PageData{Title: "Piper", IsDev: true},
			want: []string{"@get(&#39;/reload&#39;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, Page(tt.data, body))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}
