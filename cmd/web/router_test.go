package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/httpserver"
	"github.com/dmitrymomot/enroll/pkg/i18n"
	"github.com/dmitrymomot/enroll/pkg/session"
	"github.com/dmitrymomot/enroll/web/locales"
)

func newTestServer(t *testing.T, checks ...httpserver.Check) (*httptest.Server, *http.Client) {
	t.Helper()

	api := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(api.Close)
	client, err := apiclient.New(api.URL + "/api")
	require.NoError(t, err)

	translator, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage("ko"),
	)
	require.NoError(t, err)

	sessions, err := session.New(
		session.WithSecret(strings.Repeat("s", 32)),
		session.WithCleanupInterval(0),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessions.Close() })

	srv := httptest.NewServer(newRouter(routerDeps{
		log:        slog.New(slog.DiscardHandler),
		translator: translator,
		sessions:   sessions,
		api:        client,
		checks:     checks,
	}))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, c *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	srv, c := newTestServer(t, httpserver.Check{
		Name: "redis",
		Fn:   func(context.Context) error { return errors.New("down") },
	})

	resp, body := get(t, c, srv.URL+"/health/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ALIVE", body)

	resp, _ = get(t, c, srv.URL+"/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRouter_GuestIsSentToSignup(t *testing.T) {
	t.Parallel()
	srv, c := newTestServer(t)

	resp, _ := get(t, c, srv.URL+"/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/signup", resp.Header.Get("Location"))

	resp, body := get(t, c, srv.URL+"/signup")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="signup-form"`)
	assert.Contains(t, body, `<html lang="ko">`)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRouter_Language(t *testing.T) {
	t.Parallel()
	srv, c := newTestServer(t)

	_, body := get(t, c, srv.URL+"/signup?lang=en")
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, "Already have an account?")

	// remembered in a cookie
	_, body = get(t, c, srv.URL+"/signup")
	assert.Contains(t, body, `<html lang="en">`)
}

func TestRouter_NotFoundPage(t *testing.T) {
	t.Parallel()
	srv, c := newTestServer(t)

	resp, body := get(t, c, srv.URL+"/no/such/page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "페이지를 찾을 수 없습니다.")
	assert.Contains(t, body, `href="/no/such/page"`)
}
