//go:build !dev

package resources

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Dev reports whether assets are served from the source tree.
const Dev = false

// Embedded assets never change for the lifetime of the binary.
const cacheControl = "public, max-age=31536000, immutable"

// FS returns the static asset tree. In production mode it is embedded in the
// binary.
func FS() fs.FS {
	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return fsys
}

// Dir returns the on-disk static directory, relative to the project root.
func Dir() string {
	return StaticDirectoryPath
}
