package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/services"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/logging"
)

type fakeAuth struct {
	loginRole  session.Role
	loginErr   error
	gotSession string
	loggedOut  bool
	status     services.Status
	statusErr  error
}

func (f *fakeAuth) Login(_ context.Context, sessionID string) (session.Role, error) {
	f.gotSession = sessionID
	return f.loginRole, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeAuth) Status(context.Context) (services.Status, error) {
	return f.status, f.statusErr
}

type fakeGallery struct {
	albums []models.Album
	album  *models.Album
	photos []models.Photo
	photo  *models.Photo
	users  []models.User
	user   *models.User
	err    error

	created      string
	createdDraft bool
	renamed      [2]string
	published    string
	cover        [2]string
	deleted      string
	deletedIDs   []string
	uploadAlbum  string
	uploadPaths  []string
	gotQuality   models.Quality
	gotUserID    int32
}

func (f *fakeGallery) Albums(context.Context) ([]models.Album, error) { return f.albums, f.err }

func (f *fakeGallery) Album(context.Context, string) (*models.Album, []models.Photo, error) {
	return f.album, f.photos, f.err
}

func (f *fakeGallery) CreateAlbum(_ context.Context, name string, draft bool) (*models.Album, error) {
	f.created, f.createdDraft = name, draft
	return &models.Album{ID: "new", Name: name, Published: !draft}, f.err
}

func (f *fakeGallery) RenameAlbum(_ context.Context, id, name string) (*models.Album, error) {
	f.renamed = [2]string{id, name}
	return &models.Album{ID: id, Name: name}, f.err
}

func (f *fakeGallery) PublishAlbum(_ context.Context, id string) (*models.Album, error) {
	f.published = id
	return &models.Album{ID: id, Published: true}, f.err
}

func (f *fakeGallery) SetCover(_ context.Context, albumID, photoID string) (*models.Album, error) {
	f.cover = [2]string{albumID, photoID}
	return &models.Album{ID: albumID}, f.err
}

func (f *fakeGallery) DeleteAlbum(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

func (f *fakeGallery) Photos(context.Context, string) ([]models.Photo, error) { return f.photos, f.err }

func (f *fakeGallery) Photo(_ context.Context, _ string, q models.Quality) (*models.Photo, error) {
	f.gotQuality = q
	return f.photo, f.err
}

func (f *fakeGallery) DeletePhotos(_ context.Context, ids []string) error {
	f.deletedIDs = ids
	return f.err
}

func (f *fakeGallery) UploadPhotos(_ context.Context, albumID string, paths []string, onProgress services.UploadProgressFunc) ([]models.Photo, error) {
	f.uploadAlbum, f.uploadPaths = albumID, paths
	out := make([]models.Photo, 0, len(paths))
	for i, p := range paths {
		for _, pct := range []float64{5, 12, 15, 50, 100} {
			onProgress(p, pct)
		}
		out = append(out, models.Photo{ID: "p" + string(rune('1'+i))})
	}
	return out, f.err
}

func (f *fakeGallery) Users(context.Context) ([]models.User, error) { return f.users, f.err }

func (f *fakeGallery) User(_ context.Context, id int32) (*models.User, error) {
	f.gotUserID = id
	return f.user, f.err
}

func newTestApp(input string) (*App, *fakeAuth, *fakeGallery, *bytes.Buffer) {
	auth := &fakeAuth{}
	gallery := &fakeGallery{}
	out := &bytes.Buffer{}
	app := &App{
		auth:    auth,
		gallery: gallery,
		log:     logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}
	return app, auth, gallery, out
}
