package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/models"
)

// UploadProgressFunc receives progress per uploaded file. It may be called
// from several goroutines at once.
type UploadProgressFunc func(path string, percent float64)

// GalleryService wraps the album, photo and user calls the CLI needs.
type GalleryService struct {
	client      client.Client
	concurrency int
	readFile    func(string) ([]byte, error)
}

// NewGalleryService uploads at most concurrency files at a time.
func NewGalleryService(c client.Client, concurrency int) *GalleryService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &GalleryService{client: c, concurrency: concurrency, readFile: os.ReadFile}
}

func (s *GalleryService) Albums(ctx context.Context) ([]models.Album, error) {
	return s.client.ListAlbums(ctx)
}

// Album returns the album and its photos, or client.ErrNotFound.
func (s *GalleryService) Album(ctx context.Context, id string) (*models.Album, []models.Photo, error) {
	album, err := s.client.GetAlbum(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if album == nil {
		return nil, nil, fmt.Errorf("album %s: %w", id, client.ErrNotFound)
	}
	photos, err := s.client.SearchPhotos(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return album, photos, nil
}

func (s *GalleryService) CreateAlbum(ctx context.Context, name string, draft bool) (*models.Album, error) {
	return s.client.CreateAlbum(ctx, name, draft)
}

func (s *GalleryService) RenameAlbum(ctx context.Context, id, name string) (*models.Album, error) {
	return s.client.UpdateAlbum(ctx, id, models.AlbumPatch{Name: &name})
}

func (s *GalleryService) PublishAlbum(ctx context.Context, id string) (*models.Album, error) {
	published := true
	return s.client.UpdateAlbum(ctx, id, models.AlbumPatch{Published: &published})
}

func (s *GalleryService) SetCover(ctx context.Context, albumID, photoID string) (*models.Album, error) {
	return s.client.UpdateAlbum(ctx, albumID, models.AlbumPatch{CoverPhotoID: &photoID})
}

func (s *GalleryService) DeleteAlbum(ctx context.Context, id string) error {
	return s.client.DeleteAlbum(ctx, id)
}

func (s *GalleryService) Photos(ctx context.Context, albumID string) ([]models.Photo, error) {
	return s.client.SearchPhotos(ctx, albumID)
}

// Photo returns the photo at quality q, or client.ErrNotFound.
func (s *GalleryService) Photo(ctx context.Context, id string, q models.Quality) (*models.Photo, error) {
	photo, err := s.client.GetPhoto(ctx, id, q)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, fmt.Errorf("photo %s: %w", id, client.ErrNotFound)
	}
	return photo, nil
}

// DeletePhotos deletes one photo directly and several in a single batch.
func (s *GalleryService) DeletePhotos(ctx context.Context, ids []string) error {
	switch len(ids) {
	case 0:
		return nil
	case 1:
		return s.client.DeletePhoto(ctx, ids[0])
	default:
		return s.client.BatchDeletePhotos(ctx, ids)
	}
}

// UploadPhotos uploads the files at paths into an album, a bounded number at
// a time. The first failure cancels the remaining uploads. Photos are
// returned in the order of paths.
func (s *GalleryService) UploadPhotos(ctx context.Context, albumID string, paths []string, onProgress UploadProgressFunc) ([]models.Photo, error) {
	photos := make([]models.Photo, len(paths))

	var mu sync.Mutex
	report := func(path string) func(float64) {
		if onProgress == nil {
			return nil
		}
		return func(p float64) {
			mu.Lock()
			defer mu.Unlock()
			onProgress(path, p)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			data, err := s.readFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			photo, err := s.client.CreatePhoto(ctx, albumID, data, report(path))
			if err != nil {
				return fmt.Errorf("upload %s: %w", path, err)
			}
			photos[i] = *photo
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *GalleryService) Users(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

// User returns the user with scopes, or client.ErrNotFound.
func (s *GalleryService) User(ctx context.Context, id int32) (*models.User, error) {
	user, err := s.client.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, client.ErrNotFound)
	}
	return user, nil
}
