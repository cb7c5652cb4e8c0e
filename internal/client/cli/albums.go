package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/svsticky/chroma/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) Albums(ctx context.Context, _ []string) error {
	albums, err := a.gallery.Albums(ctx)
	if err != nil {
		return err
	}
	if len(albums) == 0 {
		fmt.Fprintln(a.out, "No albums.")
		return nil
	}
	for _, al := range albums {
		printAlbumLine(a.out, al)
	}
	return nil
}

func (a *App) Album(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("album <id>")
	}
	album, photos, err := a.gallery.Album(ctx, args[0])
	if err != nil {
		return err
	}

	printAlbumLine(a.out, *album)
	if !album.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "  created:   %s\n", album.CreatedAt.Format(timeLayout))
	}
	if album.Published && !album.PublishedAt.IsZero() {
		fmt.Fprintf(a.out, "  published: %s\n", album.PublishedAt.Format(timeLayout))
	}
	if album.CoverPhoto != nil {
		fmt.Fprintf(a.out, "  cover:     %s\n", album.CoverPhoto.ID)
	}
	fmt.Fprintf(a.out, "  photos:    %d\n", len(photos))
	for _, p := range photos {
		printPhotoLine(a.out, p)
	}
	return nil
}

// MkAlbum prompts for a name and whether the album starts as a draft.
func (a *App) MkAlbum(ctx context.Context, _ []string) error {
	name, err := GetSimpleText(a.reader, "Album name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return usage("album name must not be empty")
	}
	draft, err := Confirm(a.reader, "Create as draft?", a.out)
	if err != nil {
		return err
	}

	album, err := a.gallery.CreateAlbum(ctx, name, draft)
	if err != nil {
		return err
	}
	printInfo(a.out, "Created album %s.", album.ID)
	return nil
}

func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("rename <id>")
	}
	name, err := GetSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return usage("album name must not be empty")
	}

	album, err := a.gallery.RenameAlbum(ctx, args[0], name)
	if err != nil {
		return err
	}
	printInfo(a.out, "Renamed album %s to %q.", album.ID, album.Name)
	return nil
}

func (a *App) Publish(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("publish <id>")
	}
	album, err := a.gallery.PublishAlbum(ctx, args[0])
	if err != nil {
		return err
	}
	printInfo(a.out, "Published album %s.", album.ID)
	return nil
}

func (a *App) Cover(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("cover <id> <photoId>")
	}
	album, err := a.gallery.SetCover(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printInfo(a.out, "Cover of album %s set to %s.", album.ID, args[1])
	return nil
}

func (a *App) RmAlbum(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("rmalbum <id>")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete album %s and its photos?", args[0]), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.gallery.DeleteAlbum(ctx, args[0]); err != nil {
		return err
	}
	printInfo(a.out, "Deleted album %s.", args[0])
	return nil
}

func printAlbumLine(w io.Writer, al models.Album) {
	state := ""
	if !al.Published {
		state = " (draft)"
	}
	nameColor.Fprint(w, al.Name)
	fmt.Fprintf(w, "%s  %s\n", state, al.ID)
}
