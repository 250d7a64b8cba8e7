// Package assets loads carousel screenshots from a filesystem.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/piper-lan/piper-site/pkg/carousel"
)

// ErrNotImage is returned when a file exists but has no decodable image header.
var ErrNotImage = errors.New("not a decodable image")

// FSLoader resolves item sources against a filesystem and checks that each
// one is an image. Only the header is decoded.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader returns a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// DirFS returns an fs.FS for dir, or fallback when dir is empty.
func DirFS(dir string, fallback fs.FS) fs.FS {
	if dir == "" {
		return fallback
	}
	return os.DirFS(dir)
}

// Load implements carousel.Loader.
func (l *FSLoader) Load(ctx context.Context, source string) (carousel.Asset, error) {
	if err := ctx.Err(); err != nil {
		return carousel.Asset{}, err
	}

	name := path.Clean(strings.TrimPrefix(source, "/"))
	if !fs.ValidPath(name) {
		return carousel.Asset{}, fmt.Errorf("invalid asset path %q: %w", source, fs.ErrInvalid)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return carousel.Asset{}, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return carousel.Asset{}, err
	}
	if info.IsDir() {
		return carousel.Asset{}, fmt.Errorf("%s is a directory: %w", name, ErrNotImage)
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return carousel.Asset{}, fmt.Errorf("%s: %w: %v", name, ErrNotImage, err)
	}

	return carousel.Asset{
		Source: source,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   info.Size(),
	}, nil
}
