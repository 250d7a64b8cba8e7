package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piper-lan/piper-site/pkg/carousel"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 99, G: 102, B: 241, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"screenshots/chat.png":  {Data: pngBytes(t, 16, 10)},
		"screenshots/notes.txt": {Data: []byte("not an image")},
		"screenshots/sub/x.png": {Data: pngBytes(t, 2, 2)},
	}
}

func TestFSLoader_Load(t *testing.T) {
	data := pngBytes(t, 16, 10)
	l := NewFSLoader(fstest.MapFS{"screenshots/chat.png": {Data: data}})

	a, err := l.Load(context.Background(), "screenshots/chat.png")
	require.NoError(t, err)
	assert.Equal(t, carousel.Asset{
		Source: "screenshots/chat.png",
		Format: "png",
		Width:  16,
		Height: 10,
		Size:   int64(len(data)),
	}, a)
}

func TestFSLoader_LoadFailures(t *testing.T) {
	l := NewFSLoader(testFS(t))

	tests := []struct {
		name   string
		source string
		target error
	}{
		{name: "missing file", source: "screenshots/call.png", target: fs.ErrNotExist},
		{name: "not an image", source: "screenshots/notes.txt", target: ErrNotImage},
		{name: "directory", source: "screenshots/sub", target: ErrNotImage},
		{name: "escapes root", source: "../secret.png", target: fs.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(context.Background(), tt.source)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestFSLoader_LeadingSlash(t *testing.T) {
	l := NewFSLoader(testFS(t))
	_, err := l.Load(context.Background(), "/screenshots/chat.png")
	assert.NoError(t, err)
}

func TestFSLoader_CancelledContext(t *testing.T) {
	l := NewFSLoader(testFS(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Load(ctx, "screenshots/chat.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSLoader_WithCarouselResolve(t *testing.T) {
	l := NewFSLoader(testFS(t))
	items := []carousel.Item{
		{Source: "screenshots/chat.png", Label: "Chat"},
		{Source: "screenshots/call.png", Label: "Call"},
	}

	ok := carousel.Resolve(context.Background(), l, "static", 0, items[0])
	assert.False(t, ok.Failed())

	missing := carousel.Resolve(context.Background(), l, "static", 1, items[1])
	require.True(t, missing.Failed())
	assert.Equal(t, "Add: static/screenshots/call.png", missing.Placeholder.Hint)
}

func TestDirFS(t *testing.T) {
	fallback := testFS(t)
	assert.Equal(t, fs.FS(fallback), DirFS("", fallback))

	dir := t.TempDir()
	assert.NotNil(t, DirFS(dir, fallback))
}
