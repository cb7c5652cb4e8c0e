package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/fatih/color"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/transport"
	"github.com/svsticky/chroma/internal/common"
)

var (
	infoColor  = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.Faint)
	nameColor  = color.New(color.FgCyan, color.Bold)
)

func printInfo(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

// printError explains err in terms the user can act on.
func printError(w io.Writer, err error) {
	var (
		unauthorized *transport.UnauthorizedError
		limited      *transport.RateLimitedError
	)
	switch {
	case errors.Is(err, errUsage):
		errorColor.Fprintln(w, err.Error())
	case errors.As(err, &unauthorized):
		errorColor.Fprintln(w, "Your session is missing or expired, run 'login'.")
		if unauthorized.RedirectTarget != "" {
			fmt.Fprintf(w, "Log in at %s to get a new session id.\n", unauthorized.RedirectTarget)
		}
	case errors.Is(err, common.ErrNotLoggedIn):
		errorColor.Fprintln(w, "Not logged in, run 'login'.")
	case errors.As(err, &limited):
		errorColor.Fprintf(w, "Too many requests, try again in %ds.\n", limited.RetryAfterSeconds)
	case errors.Is(err, client.ErrForbidden):
		errorColor.Fprintln(w, "You are not allowed to do that.")
	case errors.Is(err, client.ErrNotFound):
		errorColor.Fprintf(w, "Not found: %v\n", err)
	case errors.Is(err, client.ErrUnavailable):
		errorColor.Fprintln(w, "The Chroma server cannot be reached.")
	default:
		errorColor.Fprintf(w, "Error: %v\n", err)
	}
}

// progressPrinter prints upload progress per file in steps of ten percent.
type progressPrinter struct {
	w    io.Writer
	mu   sync.Mutex
	last map[string]int
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, last: map[string]int{}}
}

func (p *progressPrinter) report(path string, percent float64) {
	step := int(math.Floor(percent / 10))

	p.mu.Lock()
	defer p.mu.Unlock()
	if prev, ok := p.last[path]; ok && step <= prev {
		return
	}
	p.last[path] = step
	dimColor.Fprintf(p.w, "  %s: %3.0f%%\n", path, percent)
}
