package gateway

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/common"
	"github.com/svsticky/chroma/internal/logging"
)

type loggerKey struct{}

// loggerFrom returns the request-scoped logger, or fallback.
func loggerFrom(ctx context.Context, fallback logging.Logger) logging.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logging.Logger); ok {
		return l
	}
	return fallback
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags each request with an id, taken from X-Request-Id when
// the caller sent one, and logs the outcome.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)

		log := s.log.With("request_id", id)
		ctx := context.WithValue(r.Context(), loggerKey{}, log)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		log.Info(ctx, "request handled", "method", r.Method, "path", r.URL.Path, "status", rec.status)
	})
}

// requireSession validates the session cookie of every request outside
// /auth/, retrying while rate limited. A granted role is stored in the
// request context and mirrored in the signed role cookie.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/auth/") {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()
		log := loggerFrom(ctx, s.log)

		token := ""
		if c, err := r.Cookie(common.SessionCookieName); err == nil {
			token = c.Value
		}

		decision := session.ValidateWithRetry(ctx, s.checker, token, s.maxRetries, s.maxRetryWait)
		switch d := decision.(type) {
		case session.Granted:
			s.refreshRoleCookie(w, r, d.Role)
			ctx = session.ContextWithToken(ctx, token)
			ctx = session.ContextWithRole(ctx, d.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		case session.Denied:
			if d.RedirectTarget != "" {
				http.Redirect(w, r, d.RedirectTarget, http.StatusFound)
				return
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		case session.RateLimited:
			w.Header().Set("Retry-After", strconv.Itoa(d.RetryAfterSeconds))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		case session.Unreachable:
			log.Warn(ctx, "session check unreachable", "error", d.Err)
			http.Error(w, http.StatusText(http.StatusGatewayTimeout), http.StatusGatewayTimeout)
		default:
			log.Error(ctx, "session check failed", "decision", decision.String())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

// refreshRoleCookie reissues the role cookie when it is missing, invalid or
// names another role.
func (s *Server) refreshRoleCookie(w http.ResponseWriter, r *http.Request, role session.Role) {
	if c, err := r.Cookie(common.RoleCookieName); err == nil {
		if current, err := RoleFromToken(c.Value, s.secret); err == nil && current == role {
			return
		}
	}
	if err := s.setRoleCookie(w, role); err != nil {
		loggerFrom(r.Context(), s.log).Error(r.Context(), "signing role cookie", "error", err)
	}
}
