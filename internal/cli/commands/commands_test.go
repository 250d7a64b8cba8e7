package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piper-lan/piper-site/internal/cli/output"
	"github.com/piper-lan/piper-site/internal/cli/testutil"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with args, capturing stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScreenshots_JSON(t *testing.T) {
	dir := testutil.SetupAssetsDir(t, "chat.png")
	testutil.LoadConfig(t, map[string]string{
		"PIPER_ASSETS_DIR": dir,
		"PIPER_OUTPUT":     "json",
	})

	out, _, err := execute(t, NewScreenshotsCommand())
	require.NoError(t, err)

	var report ScreenshotsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, filepath.ToSlash(dir), report.Root)
	assert.Equal(t, 3, report.Missing)
	require.Len(t, report.Items, 4)

	chat := report.Items[0]
	assert.Equal(t, StatusOK, chat.Status)
	require.NotNil(t, chat.Asset)
	assert.Equal(t, 4, chat.Asset.Width)
	assert.Equal(t, 3, chat.Asset.Height)
	assert.Nil(t, chat.Placeholder)

	call := report.Items[1]
	assert.Equal(t, "Call", call.Label)
	assert.Equal(t, StatusMissing, call.Status)
	require.NotNil(t, call.Placeholder)
	assert.Equal(t, "Add: "+filepath.ToSlash(dir)+"/screenshots/call.png", call.Placeholder.Hint)
	assert.NotEmpty(t, call.Error)
}

func TestScreenshots_Markdown(t *testing.T) {
	dir := testutil.SetupAssetsDir(t, "chat.png", "files.png")
	testutil.LoadConfig(t, map[string]string{"PIPER_ASSETS_DIR": dir})

	out, _, err := execute(t, NewScreenshotsCommand())
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "# Screenshots (4)")
	assert.Contains(t, out, "- **Missing:** 2")
	for _, item := range site.Screenshots() {
		assert.Contains(t, out, item.Label)
	}
	assert.Contains(t, out, "png 4×3")
	assert.Contains(t, out, "Add: "+filepath.ToSlash(dir)+"/screenshots/contacts.png")
}

func TestScreenshots_Strict(t *testing.T) {
	dir := testutil.SetupAssetsDir(t, "chat.png")
	testutil.LoadConfig(t, map[string]string{"PIPER_ASSETS_DIR": dir})

	_, _, err := execute(t, NewScreenshotsCommand(), "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 of 4 screenshots missing")

	full := testutil.SetupAssetsDir(t, "chat.png", "call.png", "contacts.png", "files.png")
	testutil.LoadConfig(t, map[string]string{"PIPER_ASSETS_DIR": full})

	_, _, err = execute(t, NewScreenshotsCommand(), "--strict")
	assert.NoError(t, err)
}

func TestScreenshotsText(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeText, false)
	report := ScreenshotsOutput{
		Root:  "static",
		Items: []ScreenshotInfo{{Index: 0, Label: "Chat", Source: "screenshots/chat.png", Status: StatusOK}},
	}

	screenshotsText(tr.Renderer, report)

	testutil.AssertNoANSI(t, tr.Output())
	assert.Contains(t, tr.Output(), "Chat")
	assert.Contains(t, tr.Output(), "All screenshots load")
}

func TestExport_Markdown(t *testing.T) {
	testutil.LoadConfig(t, nil)

	out, _, err := execute(t, NewExportCommand(), "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# "+site.ProductName)
	assert.Contains(t, out, "Questions and answers")
	assert.Contains(t, out, site.Default().FAQ[0].Question)
	assert.Contains(t, out, "Add: internal/ui/resources/static/screenshots/chat.png")
	assert.NotContains(t, out, "@post")
	assert.NotContains(t, out, "‹")
	assert.NotContains(t, out, "<svg")
}

func TestExport_HTMLToFile(t *testing.T) {
	testutil.LoadConfig(t, nil)
	path := filepath.Join(t.TempDir(), "index.html")

	out, _, err := execute(t, NewExportCommand(), "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported html to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "<!doctype html>")
	assert.Contains(t, doc, `class="carousel"`)
	assert.NotContains(t, doc, "/updates", "an exported page opens no update stream")
}

func TestExport_UnknownFormat(t *testing.T) {
	testutil.LoadConfig(t, nil)

	_, _, err := execute(t, NewExportCommand(), "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPageMarkdown_NoMain(t *testing.T) {
	_, err := PageMarkdown([]byte("<p>hi</p>"))
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	testutil.LoadConfig(t, map[string]string{
		"PIPER_SERVER__SESSION_SECRET": "hunter2",
		"PIPER_TRANSITION":             "400ms",
	})

	out, _, err := execute(t, NewConfigCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# Configuration")
	assert.Contains(t, out, "```yaml")
	assert.Contains(t, out, "transition: 400ms")
	assert.Contains(t, out, "port: 8765")
	assert.NotContains(t, out, "hunter2")
}

func TestConfigCommand_JSON(t *testing.T) {
	testutil.LoadConfig(t, map[string]string{"PIPER_OUTPUT": "json"})

	out, _, err := execute(t, NewConfigCommand())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "json", got["output"])
}

func TestServerConfig(t *testing.T) {
	cfg := testutil.LoadConfig(t, map[string]string{
		"PIPER_ASSETS_DIR":    "/srv/piper",
		"PIPER_SERVER__PORT":  "9000",
		"PIPER_TRANSITION":    "1s",
		"PIPER_SERVER__WATCH": "false",
	})
	cc := &CommandContext{Cfg: cfg}

	sc := ServerConfig(cc)
	assert.Equal(t, 9000, sc.Port)
	assert.False(t, sc.Watch)
	assert.Equal(t, "/srv/piper", sc.AssetsDir)
	assert.Equal(t, cfg.Transition, sc.TransitionDuration)
	assert.NotEmpty(t, sc.SessionSecret, "a random secret is generated")
	assert.NotEqual(t, sc.SessionSecret, ServerConfig(cc).SessionSecret)

	cfg.Server.SessionSecret = "fixed"
	assert.Equal(t, "fixed", ServerConfig(cc).SessionSecret)
}

func TestPreview_RequiresTerminal(t *testing.T) {
	testutil.LoadConfig(t, nil)

	_, _, err := execute(t, NewPreviewCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewServeCommand(), "serve", []string{"port", "no-browser", "watch"}},
		{NewPreviewCommand(), "preview", nil},
		{NewScreenshotsCommand(), "screenshots", []string{"strict"}},
		{NewExportCommand(), "export", []string{"format", "out"}},
		{NewConfigCommand(), "config", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			for _, f := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(f), "flag %q should exist", f)
			}
		})
	}
}
