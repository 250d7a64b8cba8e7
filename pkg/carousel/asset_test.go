package carousel

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingLoader fails for the sources in missing and counts every call.
type failingLoader struct {
	missing map[string]bool
	calls   map[string]int
}

func newFailingLoader(missing ...string) *failingLoader {
	l := &failingLoader{missing: map[string]bool{}, calls: map[string]int{}}
	for _, m := range missing {
		l.missing[m] = true
	}
	return l
}

func (l *failingLoader) Load(_ context.Context, source string) (Asset, error) {
	l.calls[source]++
	if l.missing[source] {
		return Asset{}, fs.ErrNotExist
	}
	return Asset{Source: source, Format: "png", Width: 1280, Height: 800}, nil
}

func TestResolve_Success(t *testing.T) {
	l := newFailingLoader()
	s := Resolve(context.Background(), l, "public", 0, screenshotItems[0])

	assert.False(t, s.Failed())
	require.NotNil(t, s.Asset)
	assert.Equal(t, "screenshots/chat.png", s.Asset.Source)
	assert.Nil(t, s.Placeholder)
	assert.NoError(t, s.Err)
}

func TestResolve_FailureBuildsPlaceholder(t *testing.T) {
	l := newFailingLoader("screenshots/contacts.png")
	s := Resolve(context.Background(), l, "public", 2, screenshotItems[2])

	require.True(t, s.Failed())
	assert.Nil(t, s.Asset)
	assert.Equal(t, Placeholder{Icon: PlaceholderIcon, Hint: "Add: public/screenshots/contacts.png"}, *s.Placeholder)

	var loadErr *LoadError
	require.ErrorAs(t, s.Err, &loadErr)
	assert.Equal(t, "screenshots/contacts.png", loadErr.Source)
	assert.ErrorIs(t, s.Err, fs.ErrNotExist)
}

func TestResolve_PanickingLoader(t *testing.T) {
	l := LoaderFunc(func(context.Context, string) (Asset, error) {
		panic("decoder exploded")
	})

	var s Slide
	require.NotPanics(t, func() {
		s = Resolve(context.Background(), l, "static", 1, screenshotItems[1])
	})
	assert.True(t, s.Failed())
	assert.Contains(t, s.Err.Error(), "decoder exploded")
}

func TestResolve_NilLoader(t *testing.T) {
	s := Resolve(context.Background(), nil, "static", 0, screenshotItems[0])
	assert.True(t, s.Failed())
	assert.Equal(t, "Add: static/screenshots/chat.png", s.Placeholder.Hint)
}

func TestNewPlaceholder_Deterministic(t *testing.T) {
	a := NewPlaceholder("public", "screenshots/files.png")
	b := NewPlaceholder("public", "screenshots/files.png")
	assert.Equal(t, a, b)
	assert.Equal(t, "Add: screenshots/files.png", NewPlaceholder("", "screenshots/files.png").Hint)
}

func TestLoadError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := &LoadError{Source: "x.png", Err: base}
	assert.ErrorIs(t, err, base)
	assert.Equal(t, `carousel: load "x.png": boom`, err.Error())
}
