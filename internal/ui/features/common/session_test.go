package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}

func TestOwnerToken_IssuesAndReuses(t *testing.T) {
	store := newStore()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	token, err := OwnerToken(rec, req, store)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)

	// Second request carries the cookie and gets the same token back
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()
	again, err := OwnerToken(rec2, req2, store)
	require.NoError(t, err)
	assert.Equal(t, token, again)
	assert.Empty(t, rec2.Result().Cookies(), "no new cookie for a known visitor")

	got, ok := LookupOwner(req2, store)
	assert.True(t, ok)
	assert.Equal(t, token, got)
}

func TestOwnerToken_DistinctVisitors(t *testing.T) {
	store := newStore()

	a, err := OwnerToken(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), store)
	require.NoError(t, err)
	b, err := OwnerToken(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), store)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestLookupOwner_NoCookie(t *testing.T) {
	_, ok := LookupOwner(httptest.NewRequest(http.MethodGet, "/", nil), newStore())
	assert.False(t, ok)
}

func TestOwnerToken_ForeignCookieStartsFresh(t *testing.T) {
	other := sessions.NewCookieStore([]byte("another-secret-key-32-bytes-long"))
	rec := httptest.NewRecorder()
	_, err := OwnerToken(rec, httptest.NewRequest(http.MethodGet, "/", nil), other)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	token, err := OwnerToken(httptest.NewRecorder(), req, newStore())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "60px", Px(60))
	assert.Equal(t, "-12.5px", Px(-12.5))
	assert.Equal(t, "350ms", Ms(350_000_000))
	assert.Equal(t, "tab tab--active", ClassIf("tab", "tab--active", true))
	assert.Equal(t, "tab", ClassIf("tab", "tab--active", false))
}
