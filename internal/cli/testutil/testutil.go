// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/piper-lan/piper-site/internal/cli/config"
	"github.com/piper-lan/piper-site/internal/cli/output"
	"github.com/stretchr/testify/require"
)

// SetupAssetsDir creates an assets directory holding a small PNG for each
// given screenshot name, e.g. "chat.png".
func SetupAssetsDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	shots := filepath.Join(dir, "screenshots")
	require.NoError(t, os.MkdirAll(shots, 0o755))

	for _, name := range names {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 3))))
		require.NoError(t, os.WriteFile(filepath.Join(shots, name), buf.Bytes(), 0o600))
	}
	return dir
}

// LoadConfig loads configuration in a clean working directory with the
// given PIPER_ environment variables set for the test.
func LoadConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()

	t.Chdir(t.TempDir())
	for k, v := range env {
		t.Setenv(k, v)
	}

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	return cfg
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer returns a TestRenderer for mode, treating output as a TTY when isTTY is set.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
