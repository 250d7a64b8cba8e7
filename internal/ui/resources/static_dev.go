//go:build dev

package resources

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// Dev reports whether assets are served from the source tree.
const Dev = true

// Browsers revalidate with Last-Modified; Cmd+Shift+R forces a refresh.
const cacheControl = ""

// Dir derives the absolute path to the static directory relative to this
// source file, regardless of where the binary is run from.
func Dir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(filename), "static")
}

// FS returns the static asset tree. In dev mode files are read from disk so
// edits show up without a rebuild.
func FS() fs.FS {
	dir := Dir()
	slog.Debug("static assets served from filesystem", "path", dir)
	return os.DirFS(dir)
}
