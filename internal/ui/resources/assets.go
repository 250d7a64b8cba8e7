// Package resources provides static asset handling for the site server.
package resources

import (
	"io/fs"
	"net/http"
	"path"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// ScreenshotsDir is the directory, relative to the static root, that holds
// carousel screenshots.
const ScreenshotsDir = "screenshots"

// DatastarScript is the client runtime the page loads.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// StaticPath returns the URL path for a static asset.
func StaticPath(p string) string {
	return path.Join("/static", p)
}

// HandlerFS serves fsys under /static/ with the cache policy of the build.
func HandlerFS(fsys fs.FS) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(fsys)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheControl != "" {
			w.Header().Set("Cache-Control", cacheControl)
		}
		fileServer.ServeHTTP(w, r)
	})
}

// Handler serves the built-in static assets.
func Handler() http.Handler {
	return HandlerFS(FS())
}
