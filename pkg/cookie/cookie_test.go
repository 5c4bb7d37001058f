package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func TestNew(t *testing.T) {
	t.Run("requires at least one secret", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{"", ""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := cookie.New([]string{"too-short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestManager_SignedRoundTrip(t *testing.T) {
	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	t.Run("set and get", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, mgr.SetSigned(w, "tok", "hello"))

		r := httptest.NewRequest("GET", "/", nil)
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}

		val, err := mgr.GetSigned(r, "tok")
		require.NoError(t, err)
		assert.Equal(t, "hello", val)
	})

	t.Run("missing cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		_, err := mgr.GetSigned(r, "tok")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("tampered value is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, mgr.SetSigned(w, "tok", "hello"))

		c := w.Result().Cookies()[0]
		c.Value = strings.Replace(c.Value, "|", "x|", 1)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(c)

		_, err := mgr.GetSigned(r, "tok")
		assert.Error(t, err)
	})

	t.Run("old secret still verifies after rotation", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, mgr.SetSigned(w, "tok", "hello"))

		rotated, err := cookie.New([]string{"new-secret-key-that-is-long-enough!!", testSecret})
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/", nil)
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}

		val, err := rotated.GetSigned(r, "tok")
		require.NoError(t, err)
		assert.Equal(t, "hello", val)
	})
}

func TestManager_Attributes(t *testing.T) {
	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	t.Run("options control attributes", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, mgr.SetSigned(w, "refresh", "v",
			cookie.WithPath("/session"),
			cookie.WithMaxAge(5184000),
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteLaxMode),
		))

		c := w.Result().Cookies()[0]
		assert.Equal(t, "/session", c.Path)
		assert.Equal(t, 5184000, c.MaxAge)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("delete expires at the given path", func(t *testing.T) {
		w := httptest.NewRecorder()
		mgr.Delete(w, "refresh", cookie.WithPath("/session"))

		c := w.Result().Cookies()[0]
		assert.Equal(t, "/session", c.Path)
		assert.Equal(t, -1, c.MaxAge)
		assert.Empty(t, c.Value)
	})
}
