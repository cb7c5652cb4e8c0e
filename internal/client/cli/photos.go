package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/svsticky/chroma/internal/client/models"
)

func (a *App) Photos(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("photos <albumId>")
	}
	photos, err := a.gallery.Photos(ctx, args[0])
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		fmt.Fprintln(a.out, "No photos.")
		return nil
	}
	for _, p := range photos {
		printPhotoLine(a.out, p)
	}
	return nil
}

// Photo shows one photo with the URL of the requested quality, preview by
// default.
func (a *App) Photo(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("photo <id> [thumbnail|preview|original]")
	}
	q := models.Preview
	if len(args) == 2 {
		var err error
		if q, err = models.ParseQuality(args[1]); err != nil {
			return usage(err.Error())
		}
	}

	p, err := a.gallery.Photo(ctx, args[0], q)
	if err != nil {
		return err
	}

	nameColor.Fprintln(a.out, p.ID)
	if !p.CapturedAt.IsZero() {
		fmt.Fprintf(a.out, "  captured: %s\n", p.CapturedAt.Format(timeLayout))
	}
	if !p.UploadedAt.IsZero() {
		fmt.Fprintf(a.out, "  uploaded: %s", p.UploadedAt.Format(timeLayout))
		if p.UploadedBy != nil {
			fmt.Fprintf(a.out, " by %s", p.UploadedBy.Name)
		}
		fmt.Fprintln(a.out)
	}
	if u, ok := p.URL(q); ok {
		fmt.Fprintf(a.out, "  %s: %s", q, u.URL)
		if u.Width > 0 {
			fmt.Fprintf(a.out, " (%dx%d)", u.Width, u.Height)
		}
		fmt.Fprintln(a.out)
	}
	for _, k := range slices.Sorted(maps.Keys(p.Exif)) {
		dimColor.Fprintf(a.out, "  %s: %s\n", k, p.Exif[k])
	}
	return nil
}

// Upload sends the given files to an album and prints progress per file.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("upload <albumId> <file...>")
	}
	progress := newProgressPrinter(a.out)

	photos, err := a.gallery.UploadPhotos(ctx, args[0], args[1:], progress.report)
	if err != nil {
		return err
	}
	printInfo(a.out, "Uploaded %d photo(s).", len(photos))
	for _, p := range photos {
		fmt.Fprintf(a.out, "  %s\n", p.ID)
	}
	return nil
}

func (a *App) RmPhoto(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("rmphoto <id...>")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %d photo(s)?", len(args)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.gallery.DeletePhotos(ctx, args); err != nil {
		return err
	}
	printInfo(a.out, "Deleted %d photo(s).", len(args))
	return nil
}

func printPhotoLine(w io.Writer, p models.Photo) {
	fmt.Fprintf(w, "  %s", p.ID)
	if !p.CapturedAt.IsZero() {
		dimColor.Fprintf(w, "  %s", p.CapturedAt.Format(timeLayout))
	}
	fmt.Fprintln(w)
}
