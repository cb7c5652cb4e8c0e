package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) Users(ctx context.Context, _ []string) error {
	users, err := a.gallery.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%6d  %s\n", u.ID, u.Name)
	}
	return nil
}

func (a *App) User(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("user <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return usage("user id must be a number")
	}

	u, err := a.gallery.User(ctx, int32(id))
	if err != nil {
		return err
	}
	nameColor.Fprintln(a.out, u.Name)
	fmt.Fprintf(a.out, "  id: %d\n", u.ID)
	for _, s := range u.Scopes {
		fmt.Fprintf(a.out, "  scope %s", s.Name)
		if !s.GrantedAt.IsZero() {
			dimColor.Fprintf(a.out, " granted %s by %d", s.GrantedAt.Format(timeLayout), s.GrantedBy)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}
