// Package features provides shared test utilities for site feature tests.
package features

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/piper-lan/piper-site/internal/assets"
	"github.com/piper-lan/piper-site/internal/registry"
	"github.com/piper-lan/piper-site/internal/site"
	"github.com/piper-lan/piper-site/internal/testutil"
	"github.com/piper-lan/piper-site/internal/ui/features/common"
	"github.com/piper-lan/piper-site/internal/ui/notifier"
	"github.com/piper-lan/piper-site/pkg/carousel"
)

// TestRoot is the asset root named in placeholder hints during tests.
const TestRoot = "testdata/static"

// TestFixture holds all dependencies needed for site handler tests.
type TestFixture struct {
	Registry     *registry.Registry
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
	Assets       fstest.MapFS
	Loader       carousel.Loader
	Logger       *slog.Logger
	Duration     time.Duration
}

// SetupTestFixture creates a fixture whose asset tree contains a PNG for
// each of the given sources, e.g. "screenshots/chat.png". Every other
// screenshot is missing and renders as a placeholder.
func SetupTestFixture(t *testing.T, sources ...string) *TestFixture {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, src := range sources {
		fsys[src] = &fstest.MapFile{Data: PNG(t, 32, 20)}
	}

	return &TestFixture{
		Registry:     registry.New(),
		Notifier:     notifier.New(),
		SessionStore: NewTestSessionStore(),
		Assets:       fsys,
		Loader:       assets.NewFSLoader(fsys),
		Logger:       testutil.NewTestLogger(t),
		Duration:     50 * time.Millisecond,
	}
}

// Visitor issues an owner token and returns it with the session cookie
// that carries it.
func (f *TestFixture) Visitor(t *testing.T) (string, *http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	token, err := common.OwnerToken(rec, httptest.NewRequest(http.MethodGet, "/", nil), f.SessionStore)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return token, cookies[0]
}

// Mount mounts a screenshots carousel owned by owner.
func (f *TestFixture) Mount(t *testing.T, owner string) *registry.Instance {
	t.Helper()

	c, err := carousel.New(site.Screenshots(), carousel.WithDuration(f.Duration))
	require.NoError(t, err)
	return f.Registry.Mount(owner, c)
}

// PNG encodes a solid w×h image.
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 79, G: 70, B: 229, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
