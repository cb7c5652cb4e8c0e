package gateway

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/codec"
	"github.com/svsticky/chroma/internal/common"
	"github.com/svsticky/chroma/internal/gateway/config"
	"github.com/svsticky/chroma/internal/logging"
	"github.com/svsticky/chroma/internal/proto"
)

// newUpstream serves the access check and the album list. Only token "tok"
// is accepted.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+session.AccessPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "tok" {
			w.Header().Set("Location", "https://koala.example/login")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", codec.MediaType)
		_, _ = w.Write(codec.Encode(&proto.AccessResponse{Admin: true}))
	})
	mux.HandleFunc("GET /api/v2/albums", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", codec.MediaType)
		_, _ = w.Write(codec.Encode(&proto.ListAlbumsResponse{Albums: []*proto.Album{
			{ID: proto.String("a1"), Name: proto.String("Gala"), Published: proto.Bool(true)},
		}}))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func startApp(t *testing.T, upstream string) (string, context.CancelFunc, <-chan error) {
	t.Helper()
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.APIBaseURL = upstream
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	app, err := NewApp(&cfg, logging.Discard())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln) }()
	return "http://" + ln.Addr().String(), cancel, done
}

func noRedirect() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
}

func TestApp_EndToEnd(t *testing.T) {
	upstream := newUpstream(t)
	base, cancel, done := startApp(t, upstream.URL)
	httpClient := noRedirect()

	resp, err := httpClient.Get(base + "/auth/handle_login?session_id=tok")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	var cookies []*http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == common.SessionCookieName || c.Name == common.RoleCookieName {
			cookies = append(cookies, c)
		}
	}
	require.Len(t, cookies, 2)

	req, err := http.NewRequest(http.MethodGet, base+"/albums", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var albums []albumView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&albums))
	assert.Equal(t, []albumView{{ID: "a1", Name: "Gala", Published: true}}, albums)

	cancel()
	require.NoError(t, <-done)
}

func TestApp_DeniedSessionRedirectsToKoala(t *testing.T) {
	upstream := newUpstream(t)
	base, cancel, done := startApp(t, upstream.URL)
	defer func() {
		cancel()
		<-done
	}()

	resp, err := noRedirect().Get(base + "/albums")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://koala.example/login", resp.Header.Get("Location"))
}

func TestNewApp_GeneratesSecretWhenUnset(t *testing.T) {
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.CookieSecret = ""

	_, err := NewApp(&cfg, logging.Discard())
	require.NoError(t, err)
	assert.Len(t, cfg.CookieSecret, 64)
}

func TestContextResolver(t *testing.T) {
	r := contextResolver{baseURL: "https://api"}

	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Token)

	cfg, err = r.Resolve(session.ContextWithToken(context.Background(), "tok"))
	require.NoError(t, err)
	assert.Equal(t, "https://api", cfg.BaseURL)
	assert.Equal(t, "tok", cfg.Token)
}

func newRunApp(t *testing.T) *App {
	t.Helper()
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	app, err := NewApp(&cfg, logging.Discard())
	require.NoError(t, err)
	return app
}

func TestApp_RunStopsWhenContextEnds(t *testing.T) {
	app := newRunApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
