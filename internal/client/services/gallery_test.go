package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/models"
)

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, c+".jpg")
		require.NoError(t, os.WriteFile(paths[i], []byte(c), 0o600))
	}
	return paths
}

func TestUploadPhotos_KeepsOrderAndReportsProgress(t *testing.T) {
	fc := &fakeClient{}
	svc := NewGalleryService(fc, 2)
	paths := writeFiles(t, "a", "b", "c", "d")

	progress := map[string][]float64{}
	photos, err := svc.UploadPhotos(context.Background(), "alb", paths, func(path string, p float64) {
		progress[path] = append(progress[path], p)
	})
	require.NoError(t, err)

	require.Len(t, photos, 4)
	for i, want := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, "photo-"+want, photos[i].ID)
		assert.Equal(t, []float64{50, 100}, progress[paths[i]])
	}
	assert.Len(t, fc.Uploaded, 4)
}

func TestUploadPhotos_FirstFailureWins(t *testing.T) {
	boom := errors.New("boom")
	fc := &fakeClient{UploadErr: map[string]error{"b": boom}}
	svc := NewGalleryService(fc, 1)

	_, err := svc.UploadPhotos(context.Background(), "alb", writeFiles(t, "a", "b", "c"), nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "b.jpg")
}

func TestUploadPhotos_MissingFile(t *testing.T) {
	svc := NewGalleryService(&fakeClient{}, 4)

	_, err := svc.UploadPhotos(context.Background(), "alb", []string{filepath.Join(t.TempDir(), "nope.jpg")}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAlbum_NotFound(t *testing.T) {
	svc := NewGalleryService(&fakeClient{}, 1)

	_, _, err := svc.Album(context.Background(), "missing")
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestAlbum_WithPhotos(t *testing.T) {
	fc := &fakeClient{
		AlbumByID:   map[string]*models.Album{"a1": {ID: "a1", Name: "Borrel"}},
		PhotosByAlb: map[string][]models.Photo{"a1": {{ID: "p1"}}},
	}

	album, photos, err := NewGalleryService(fc, 1).Album(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Borrel", album.Name)
	assert.Equal(t, []models.Photo{{ID: "p1"}}, photos)
}

func TestAlbumPatches(t *testing.T) {
	fc := &fakeClient{}
	svc := NewGalleryService(fc, 1)
	ctx := context.Background()

	_, err := svc.RenameAlbum(ctx, "a1", "New name")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, client.UpdateMask(fc.LastPatch.Object()))

	_, err = svc.PublishAlbum(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"published"}, client.UpdateMask(fc.LastPatch.Object()))

	_, err = svc.SetCover(ctx, "a1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"coverPhoto.id"}, client.UpdateMask(fc.LastPatch.Object()))

	_, err = svc.CreateAlbum(ctx, "Draft", true)
	require.NoError(t, err)
	assert.Equal(t, "Draft", fc.LastCreate)
	assert.True(t, fc.LastCreateDraft)
}

func TestDeletePhotos(t *testing.T) {
	fc := &fakeClient{}
	svc := NewGalleryService(fc, 1)
	ctx := context.Background()

	require.NoError(t, svc.DeletePhotos(ctx, nil))
	require.NoError(t, svc.DeletePhotos(ctx, []string{"p1"}))
	require.NoError(t, svc.DeletePhotos(ctx, []string{"p2", "p3"}))

	assert.Equal(t, []string{"p1"}, fc.Deleted)
	assert.Equal(t, []string{"p2", "p3"}, fc.BatchDeleted)
}

func TestPhotoAndUser_NotFound(t *testing.T) {
	svc := NewGalleryService(&fakeClient{}, 1)
	ctx := context.Background()

	_, err := svc.Photo(ctx, "p1", models.Preview)
	require.ErrorIs(t, err, client.ErrNotFound)

	_, err = svc.User(ctx, 4)
	require.ErrorIs(t, err, client.ErrNotFound)
}
