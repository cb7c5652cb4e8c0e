package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/client/transport"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "chroma.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeChecker returns decisions in order and repeats the last one.
type fakeChecker struct {
	decisions []session.AccessDecision
	tokens    []string
}

func (f *fakeChecker) Validate(_ context.Context, token string) session.AccessDecision {
	i := min(len(f.tokens), len(f.decisions)-1)
	f.tokens = append(f.tokens, token)
	return f.decisions[i]
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu sync.Mutex

	Albums      []models.Album
	AlbumByID   map[string]*models.Album
	PhotosByAlb map[string][]models.Photo
	PhotoByID   map[string]*models.Photo
	UserByID    map[int32]*models.User

	Err       error
	UploadErr map[string]error

	LastPatch       models.AlbumPatch
	LastCreate      string
	LastCreateDraft bool
	Deleted         []string
	BatchDeleted    []string
	Uploaded        map[string][]byte
	LastQuality     models.Quality
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) ListAlbums(context.Context) ([]models.Album, error) {
	return f.Albums, f.Err
}

func (f *fakeClient) GetAlbum(_ context.Context, id string) (*models.Album, error) {
	return f.AlbumByID[id], f.Err
}

func (f *fakeClient) CreateAlbum(_ context.Context, name string, draft bool) (*models.Album, error) {
	f.LastCreate, f.LastCreateDraft = name, draft
	return &models.Album{ID: "new", Name: name, Published: !draft}, f.Err
}

func (f *fakeClient) UpdateAlbum(_ context.Context, id string, patch models.AlbumPatch) (*models.Album, error) {
	f.LastPatch = patch
	return &models.Album{ID: id}, f.Err
}

func (f *fakeClient) DeleteAlbum(_ context.Context, id string) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakeClient) SearchPhotos(_ context.Context, albumID string) ([]models.Photo, error) {
	return f.PhotosByAlb[albumID], f.Err
}

func (f *fakeClient) GetPhoto(_ context.Context, id string, q models.Quality) (*models.Photo, error) {
	f.LastQuality = q
	return f.PhotoByID[id], f.Err
}

func (f *fakeClient) CreatePhoto(ctx context.Context, albumID string, data []byte, onProgress transport.ProgressFunc) (*models.Photo, error) {
	f.mu.Lock()
	err := f.UploadErr[string(data)]
	if f.Uploaded == nil {
		f.Uploaded = map[string][]byte{}
	}
	f.Uploaded[string(data)] = data
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if onProgress != nil {
		onProgress(50)
		onProgress(100)
	}
	return &models.Photo{ID: "photo-" + string(data), AlbumIDs: []string{albumID}}, ctx.Err()
}

func (f *fakeClient) DeletePhoto(_ context.Context, id string) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakeClient) BatchDeletePhotos(_ context.Context, ids []string) error {
	f.BatchDeleted = append(f.BatchDeleted, ids...)
	return f.Err
}

func (f *fakeClient) GetUser(_ context.Context, id int32) (*models.User, error) {
	return f.UserByID[id], f.Err
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	return []models.User{{ID: 1, Name: "Alex"}}, f.Err
}
