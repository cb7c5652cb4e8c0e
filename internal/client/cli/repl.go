package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// command runs one REPL command with its arguments.
type command func(a commands, ctx context.Context, args []string) error

// commands is the surface the REPL dispatches to. App satisfies it; tests
// provide a stub.
type commands interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Albums(ctx context.Context, args []string) error
	Album(ctx context.Context, args []string) error
	MkAlbum(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Publish(ctx context.Context, args []string) error
	Cover(ctx context.Context, args []string) error
	RmAlbum(ctx context.Context, args []string) error
	Photos(ctx context.Context, args []string) error
	Photo(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	RmPhoto(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	User(ctx context.Context, args []string) error
}

var commandTable = map[string]command{
	"login":   commands.Login,
	"logout":  commands.Logout,
	"status":  commands.Status,
	"albums":  commands.Albums,
	"album":   commands.Album,
	"mkalbum": commands.MkAlbum,
	"rename":  commands.Rename,
	"publish": commands.Publish,
	"cover":   commands.Cover,
	"rmalbum": commands.RmAlbum,
	"photos":  commands.Photos,
	"photo":   commands.Photo,
	"upload":  commands.Upload,
	"rmphoto": commands.RmPhoto,
	"users":   commands.Users,
	"user":    commands.User,
}

// errUsage marks a command invoked with wrong arguments.
var errUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

// runREPL reads commands line by line until EOF or "exit". Errors returned
// by commands are printed and the loop continues. Commands that prompt read
// from the same reader.
func runREPL(ctx context.Context, a commands, prompt func() string, in *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(out, prompt())
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(out, a.isLoggedIn())
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		cmd, ok := commandTable[name]
		if !ok {
			printError(out, fmt.Errorf("unknown command %q (type 'help')", name))
			continue
		}
		if err := cmd(a, ctx, args); err != nil {
			printError(out, err)
		}
	}
}

func printHelp(out io.Writer, loggedIn bool) {
	if !loggedIn {
		fmt.Fprintln(out, "Available commands: login, status, help, exit")
		return
	}
	fmt.Fprintln(out, `Available commands:
  albums                          list albums
  album <id>                      show an album and its photos
  mkalbum                         create an album
  rename <id>                     rename an album
  publish <id>                    publish a draft album
  cover <id> <photoId>            set the cover photo of an album
  rmalbum <id>                    delete an album
  photos <albumId>                list photos of an album
  photo <id> [quality]            show a photo (thumbnail, preview, original)
  upload <albumId> <file...>      upload photos
  rmphoto <id...>                 delete photos
  users, user <id>                list users, show a user
  status, logout, help, exit`)
}
