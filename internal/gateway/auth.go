package gateway

import (
	"net/http"
	"strconv"

	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/common"
)

// handleLogin completes a Koala login. The session id is validated exactly
// once; a rate limited check is reported to the browser instead of retried.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := loggerFrom(ctx, s.log)

	sessionID := r.URL.Query().Get(common.SessionLoginParam)
	if sessionID == "" {
		http.Error(w, "missing "+common.SessionLoginParam, http.StatusBadRequest)
		return
	}

	decision := s.checker.Validate(ctx, sessionID)
	switch d := decision.(type) {
	case session.Granted:
		http.SetCookie(w, &http.Cookie{
			Name:     common.SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		if err := s.setRoleCookie(w, d.Role); err != nil {
			log.Error(ctx, "signing role cookie", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		log.Info(ctx, "login completed", "role", string(d.Role))
		http.Redirect(w, r, "/", http.StatusFound)
	case session.Denied:
		target := d.RedirectTarget
		if target == "" {
			target = "/"
		}
		http.Redirect(w, r, target, http.StatusFound)
	case session.RateLimited:
		w.Header().Set("Retry-After", strconv.Itoa(d.RetryAfterSeconds))
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
	case session.Unreachable:
		log.Warn(ctx, "login check unreachable", "error", d.Err)
		http.Error(w, http.StatusText(http.StatusGatewayTimeout), http.StatusGatewayTimeout)
	default:
		log.Error(ctx, "login check failed", "decision", decision.String())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, common.SessionCookieName)
	clearCookie(w, common.RoleCookieName)
	http.Redirect(w, r, "/", http.StatusFound)
}
