package client

import (
	"context"

	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/transport"
)

type Client interface {
	ListAlbums(ctx context.Context) ([]models.Album, error)
	GetAlbum(ctx context.Context, id string) (*models.Album, error)
	CreateAlbum(ctx context.Context, name string, draft bool) (*models.Album, error)
	UpdateAlbum(ctx context.Context, id string, patch models.AlbumPatch) (*models.Album, error)
	DeleteAlbum(ctx context.Context, id string) error

	SearchPhotos(ctx context.Context, albumID string) ([]models.Photo, error)
	GetPhoto(ctx context.Context, id string, quality models.Quality) (*models.Photo, error)
	CreatePhoto(ctx context.Context, albumID string, data []byte, onProgress transport.ProgressFunc) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
	BatchDeletePhotos(ctx context.Context, ids []string) error

	GetUser(ctx context.Context, id int32) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
