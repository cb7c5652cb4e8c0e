package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/client/transport"
	"github.com/svsticky/chroma/internal/cryptox"
	"github.com/svsticky/chroma/internal/gateway/config"
	"github.com/svsticky/chroma/internal/logging"
)

// shutdownSignals end Run.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

const readHeaderTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

// NewApp wires the gateway. Without a configured cookie secret a random one
// is generated, so role cookies do not survive a restart.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if c.CookieSecret == "" {
		secret, err := cryptox.RandomHex(32)
		if err != nil {
			return nil, fmt.Errorf("generating cookie secret: %w", err)
		}
		c.CookieSecret = secret
		logger.Warn(context.Background(), "no cookie secret configured, using a random one")
	}

	dispatcher := transport.NewDispatcher(&http.Client{Timeout: c.RequestTimeout}, logger)
	srv := NewServer(Options{
		Checker:      session.NewValidator(dispatcher, c.APIBaseURL, logger),
		Gallery:      client.NewHTTPClient(dispatcher, contextResolver{baseURL: c.APIBaseURL}),
		Secret:       []byte(c.CookieSecret),
		RoleTTL:      c.RoleCookieTTL,
		MaxRetries:   c.MaxRetries,
		MaxRetryWait: c.MaxRetryWait,
		Logger:       logger,
	})

	return &App{
		config: c,
		logger: logger,
		server: &http.Server{
			Addr:              c.ListenAddr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts down gracefully. Signal delivery is restored when Run returns.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	app.server.BaseContext = func(net.Listener) context.Context { return context.WithoutCancel(ctx) }
	app.logger.Info(ctx, "gateway listening", "addr", ln.Addr().String(), "api", app.config.APIBaseURL)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	app.logger.Info(shutdownCtx, "shutting down gateway")
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
