package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/svsticky/chroma/internal/client/services"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/common"
)

// Login asks for a Koala session id without echo and stores it when the API
// accepts it.
func (a *App) Login(ctx context.Context, _ []string) error {
	sessionID, err := GetSecret("Session id", a.out)
	if err != nil {
		return err
	}

	role, err := a.auth.Login(ctx, sessionID)
	if err != nil {
		var loginErr *services.LoginError
		if errors.As(err, &loginErr) {
			if d, ok := loginErr.Decision.(session.Denied); ok && d.RedirectTarget != "" {
				fmt.Fprintf(a.out, "Log in at %s to get a new session id.\n", d.RedirectTarget)
			}
		}
		return err
	}

	a.role = role
	printInfo(a.out, "Logged in as %s.", role)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.role = ""
	printInfo(a.out, "Logged out.")
	return nil
}

// Status re-validates the stored session and updates the prompt.
func (a *App) Status(ctx context.Context, _ []string) error {
	st, err := a.auth.Status(ctx)
	if errors.Is(err, common.ErrNotLoggedIn) {
		a.role = ""
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	switch d := st.Decision.(type) {
	case session.Granted:
		a.role = d.Role
		printInfo(a.out, "Logged in as %s.", d.Role)
	case session.Denied:
		a.role = ""
		fmt.Fprintln(a.out, "The stored session is no longer valid, run 'login'.")
		if d.RedirectTarget != "" {
			fmt.Fprintf(a.out, "Log in at %s to get a new session id.\n", d.RedirectTarget)
		}
	default:
		a.role = st.StoredRole
		fmt.Fprintf(a.out, "Stored session as %s could not be checked: %s\n", st.StoredRole, d)
	}
	return nil
}
