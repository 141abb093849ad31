package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytgebes/biospace/pkg/dashboard"
	"github.com/ytgebes/biospace/pkg/domain"
	"github.com/ytgebes/biospace/server/mocks"
)

// newDashboardMock makes a dashboard mock serving english strings and the language list
func newDashboardMock() *mocks.DashboardMock {
	return &mocks.DashboardMock{
		LanguageFunc: func(context.Context, string) (dashboard.LanguageView, error) {
			return dashboard.LanguageView{Language: domain.DefaultLanguage, Strings: domain.DefaultUIStrings()}, nil
		},
		LanguagesFunc: func() []domain.Language { return domain.Languages },
	}
}

// testServer creates a server instance using the actual New function
func testServer(t *testing.T, dash Dashboard) *Server {
	t.Helper()
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
	srv, err := New(cfg, dash, "test", false)
	require.NoError(t, err)
	return srv
}

// serve runs a request through the full router, middleware included
func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}

func TestServer_New(t *testing.T) {
	srv := testServer(t, newDashboardMock())
	assert.NotNil(t, srv)
	assert.Equal(t, "test", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.templates.Lookup("index.html"))
	for _, name := range []string{"results", "row", "chat", "columns", "uploads", "error"} {
		assert.NotNil(t, srv.templates.Lookup(name), "template %s", name)
	}
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv, err := New(cfg, newDashboardMock(), "1.0.0", true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port)) //nolint:noctx // test
		return err == nil
	}, time.Second, 10*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "biospace", resp.Header.Get("App-Name"))

	// shutdown server
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Status(t *testing.T) {
	srv := testServer(t, newDashboardMock())

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_SessionCookie(t *testing.T) {
	var sids []string
	dash := newDashboardMock()
	dash.TranslateColumnsFunc = func(_ context.Context, sid string) ([]string, error) {
		sids = append(sids, sid)
		return []string{"Title"}, nil
	}
	srv := testServer(t, dash)

	// new visitor gets a cookie
	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/columns", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	_, err := uuid.Parse(cookies[0].Value)
	require.NoError(t, err)
	require.Len(t, sids, 1)
	assert.Equal(t, cookies[0].Value, sids[0])

	// returning visitor keeps the session
	req := httptest.NewRequest(http.MethodPost, "/columns", http.NoBody)
	req.AddCookie(cookies[0])
	rec = serve(srv, req)
	assert.Empty(t, rec.Result().Cookies())
	require.Len(t, sids, 2)
	assert.Equal(t, sids[0], sids[1])

	// forged ids are replaced
	req = httptest.NewRequest(http.MethodPost, "/columns", http.NoBody)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "../../etc/passwd"})
	rec = serve(srv, req)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.NotEqual(t, "../../etc/passwd", sids[2])
	assert.NotEqual(t, sids[0], sids[2])
}

func TestServer_Static(t *testing.T) {
	srv := testServer(t, newDashboardMock())

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".btn")

	rec = serve(srv, httptest.NewRequest(http.MethodGet, "/static/missing.css", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind domain.ErrorKind
		want int
	}{
		{domain.KindNone, http.StatusOK},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindSchema, http.StatusUnprocessableEntity},
		{domain.KindParse, http.StatusUnprocessableEntity},
		{domain.KindFetch, http.StatusBadGateway},
		{domain.KindModel, http.StatusBadGateway},
		{domain.KindTranslation, http.StatusBadGateway},
		{domain.KindInvalidTransition, http.StatusConflict},
		{domain.ErrorKind("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.kind))
		})
	}
}

func TestErrStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errStatus(dashboard.ErrEmptyQuestion))
	assert.Equal(t, http.StatusBadRequest, errStatus(fmt.Errorf("ask: %w", dashboard.ErrEmptyQuestion)))
	assert.Equal(t, http.StatusNotFound, errStatus(domain.Fail(domain.KindNotFound, "no row", nil)))
	assert.Equal(t, http.StatusInternalServerError, errStatus(fmt.Errorf("load session: disk full")))
}
