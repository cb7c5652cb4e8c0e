package gateway

import (
	"context"

	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/client/transport"
)

// contextResolver forwards the session token of the incoming request to the
// upstream API. Requests without a token are sent without Authorization.
type contextResolver struct {
	baseURL string
}

func (r contextResolver) Resolve(ctx context.Context) (transport.Config, error) {
	token, _ := session.TokenFromContext(ctx)
	return transport.Config{BaseURL: r.baseURL, Token: token}, nil
}
