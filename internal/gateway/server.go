// Package gateway is the browser-facing session boundary of Chroma.
//
// It completes a Koala login by validating the session id once and storing it
// in cookies, gates every other route on a valid session, and serves a small
// JSON read API by forwarding the caller's session to the Chroma API.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/common"
	"github.com/svsticky/chroma/internal/logging"
)

// Gallery is the read side of the Chroma API used by the JSON routes.
type Gallery interface {
	ListAlbums(ctx context.Context) ([]models.Album, error)
	GetAlbum(ctx context.Context, id string) (*models.Album, error)
	GetPhoto(ctx context.Context, id string, quality models.Quality) (*models.Photo, error)
}

type Server struct {
	checker      session.Checker
	gallery      Gallery
	secret       []byte
	roleTTL      time.Duration
	maxRetries   int
	maxRetryWait time.Duration
	log          logging.Logger
}

type Options struct {
	Checker      session.Checker
	Gallery      Gallery
	Secret       []byte
	RoleTTL      time.Duration
	MaxRetries   int
	MaxRetryWait time.Duration
	Logger       logging.Logger
}

func NewServer(o Options) *Server {
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return &Server{
		checker:      o.Checker,
		gallery:      o.Gallery,
		secret:       o.Secret,
		roleTTL:      o.RoleTTL,
		maxRetries:   o.MaxRetries,
		maxRetryWait: o.MaxRetryWait,
		log:          o.Logger,
	}
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/handle_login", s.handleLogin)
	mux.HandleFunc("GET /auth/logout", s.handleLogout)
	mux.HandleFunc("GET /albums", s.listAlbums)
	mux.HandleFunc("GET /albums/{id}", s.getAlbum)
	mux.HandleFunc("GET /photos/{id}", s.getPhoto)
	mux.HandleFunc("GET /{$}", s.whoami)

	return s.withRequestID(s.requireSession(mux))
}

func (s *Server) setRoleCookie(w http.ResponseWriter, role session.Role) error {
	signed, err := SignRole(role, s.secret, s.roleTTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     common.RoleCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.roleTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
}
