package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/svsticky/chroma/internal/client/transport"
	"github.com/svsticky/chroma/internal/logging"
	"github.com/svsticky/chroma/internal/proto"
)

// AccessPath is the API endpoint used to check a session.
const AccessPath = "/api/v2/access"

// Checker validates a token once.
type Checker interface {
	Validate(ctx context.Context, token string) AccessDecision
}

// Validator checks tokens against the access endpoint.
type Validator struct {
	dispatcher *transport.Dispatcher
	baseURL    string
	log        logging.Logger
}

func NewValidator(d *transport.Dispatcher, baseURL string, log logging.Logger) *Validator {
	if log == nil {
		log = logging.Discard()
	}
	return &Validator{dispatcher: d, baseURL: baseURL, log: log}
}

// Validate performs exactly one access check for token.
func (v *Validator) Validate(ctx context.Context, token string) AccessDecision {
	req, err := transport.Build(
		transport.Call{Path: AccessPath, Method: http.MethodGet},
		transport.Config{BaseURL: v.baseURL, Token: token},
	)
	if err != nil {
		return Unknown{Err: err}
	}

	resp, err := transport.Retrieve[proto.AccessResponse](ctx, v.dispatcher, req)
	decision := decide(resp, err)
	v.log.Debug(ctx, "session validated", "decision", decision.String())
	return decision
}

func decide(resp *proto.AccessResponse, err error) AccessDecision {
	if err == nil {
		if resp.Admin {
			return Granted{Role: RoleAdmin}
		}
		return Granted{Role: RoleUser}
	}

	var (
		unauthorized *transport.UnauthorizedError
		limited      *transport.RateLimitedError
		status       *transport.StatusError
	)
	switch {
	case errors.As(err, &unauthorized):
		return Denied{RedirectTarget: unauthorized.RedirectTarget}
	case errors.As(err, &limited):
		return RateLimited{RetryAfterSeconds: limited.RetryAfterSeconds}
	case errors.Is(err, transport.ErrUnreachable):
		return Unreachable{Err: err}
	case errors.As(err, &status):
		// A success status without a body still means the session is valid.
		if status.Status >= 200 && status.Status <= 299 {
			return Granted{Role: RoleUser}
		}
		return Unknown{Status: status.Status, Err: err}
	default:
		return Unknown{Err: err}
	}
}
