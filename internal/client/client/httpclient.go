package client

import (
	"context"
	"net/http"

	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/transport"
	"github.com/svsticky/chroma/internal/codec"
	"github.com/svsticky/chroma/internal/proto"
)

// API paths.
const (
	pathAlbums            = "/api/v2/albums"
	pathAlbum             = "/api/v2/albums/{id}"
	pathPhotos            = "/api/v2/photos"
	pathPhoto             = "/api/v2/photos/{id}"
	pathPhotoSearch       = "/api/v2/photos/search"
	pathPhotosBatchDelete = "/api/v2/photos:batchDelete"
	pathUser              = "/api/v2/user"
	pathUserList          = "/api/v2/user/list"
)

// HTTPClient implements Client over HTTP with protobuf bodies.
type HTTPClient struct {
	dispatcher *transport.Dispatcher
	resolver   transport.ConfigResolver
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client that resolves its base URL and token
// through resolver on every call.
func NewHTTPClient(d *transport.Dispatcher, resolver transport.ConfigResolver) *HTTPClient {
	return &HTTPClient{dispatcher: d, resolver: resolver}
}

func (c *HTTPClient) build(ctx context.Context, call transport.Call) (*transport.Request, error) {
	cfg, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return transport.Build(call, cfg)
}

func (c *HTTPClient) send(ctx context.Context, call transport.Call) error {
	req, err := c.build(ctx, call)
	if err != nil {
		return err
	}
	resp, err := c.dispatcher.Send(ctx, req)
	if err != nil {
		return mapError(err)
	}
	return mapError(resp.Err())
}

func (c *HTTPClient) ListAlbums(ctx context.Context) ([]models.Album, error) {
	req, err := c.build(ctx, transport.Call{Path: pathAlbums, Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.ListAlbumsResponse](ctx, c.dispatcher, req)
	if err != nil {
		return nil, mapError(err)
	}

	albums := make([]models.Album, 0, len(resp.Albums))
	for _, a := range resp.Albums {
		albums = append(albums, models.AlbumFromProto(a))
	}
	return albums, nil
}

// GetAlbum returns nil, nil when the album does not exist.
func (c *HTTPClient) GetAlbum(ctx context.Context, id string) (*models.Album, error) {
	req, err := c.build(ctx, transport.Call{
		Path:       pathAlbum,
		Method:     http.MethodGet,
		PathParams: map[string]string{"id": id},
	})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.Album](ctx, c.dispatcher, req)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	album := models.AlbumFromProto(resp)
	return &album, nil
}

// CreateAlbum creates an empty album. A draft album is not published.
func (c *HTTPClient) CreateAlbum(ctx context.Context, name string, draft bool) (*models.Album, error) {
	body := codec.Encode(&proto.Album{Name: proto.String(name), Published: proto.Bool(!draft)})
	req, err := c.build(ctx, transport.Call{Path: pathAlbums, Method: http.MethodPost, Body: body})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.Album](ctx, c.dispatcher, req)
	if err != nil {
		return nil, mapError(err)
	}
	album := models.AlbumFromProto(resp)
	return &album, nil
}

// UpdateAlbum changes the fields set in patch. The update mask sent along
// is computed from patch.Object().
func (c *HTTPClient) UpdateAlbum(ctx context.Context, id string, patch models.AlbumPatch) (*models.Album, error) {
	req, err := c.build(ctx, transport.Call{
		Path:       pathAlbum,
		Method:     http.MethodPatch,
		PathParams: map[string]string{"id": id},
		Query:      map[string]any{"update_mask": UpdateMask(patch.Object())},
		Body:       codec.Encode(patch.Proto(id)),
	})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.Album](ctx, c.dispatcher, req)
	if err != nil {
		return nil, mapError(err)
	}
	album := models.AlbumFromProto(resp)
	return &album, nil
}

func (c *HTTPClient) DeleteAlbum(ctx context.Context, id string) error {
	return c.send(ctx, transport.Call{
		Path:       pathAlbum,
		Method:     http.MethodDelete,
		PathParams: map[string]string{"id": id},
	})
}

// SearchPhotos lists the photos of an album, or all photos when albumID is
// empty.
func (c *HTTPClient) SearchPhotos(ctx context.Context, albumID string) ([]models.Photo, error) {
	search := &proto.SearchPhotosRequest{}
	if albumID != "" {
		search.AlbumID = proto.String(albumID)
	}
	req, err := c.build(ctx, transport.Call{Path: pathPhotoSearch, Method: http.MethodPost, Body: codec.Encode(search)})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.SearchPhotosResponse](ctx, c.dispatcher, req)
	if err != nil {
		return nil, mapError(err)
	}

	photos := make([]models.Photo, 0, len(resp.Photos))
	for _, p := range resp.Photos {
		photos = append(photos, models.PhotoFromProto(p))
	}
	return photos, nil
}

// GetPhoto returns nil, nil when the photo does not exist.
func (c *HTTPClient) GetPhoto(ctx context.Context, id string, quality models.Quality) (*models.Photo, error) {
	req, err := c.build(ctx, transport.Call{
		Path:       pathPhoto,
		Method:     http.MethodGet,
		PathParams: map[string]string{"id": id},
		Query:      map[string]any{"quality_preference": quality},
	})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.Photo](ctx, c.dispatcher, req)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	photo := models.PhotoFromProto(resp)
	return &photo, nil
}

// CreatePhoto uploads image data into an album, reporting progress through
// onProgress.
func (c *HTTPClient) CreatePhoto(ctx context.Context, albumID string, data []byte, onProgress transport.ProgressFunc) (*models.Photo, error) {
	body := codec.Encode(&proto.CreatePhotoRequest{AlbumID: albumID, Data: data})
	req, err := c.build(ctx, transport.Call{Path: pathPhotos, Method: http.MethodPost, Body: body})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Upload[proto.Photo](ctx, c.dispatcher, req, onProgress)
	if err != nil {
		return nil, mapError(err)
	}
	photo := models.PhotoFromProto(resp)
	return &photo, nil
}

func (c *HTTPClient) DeletePhoto(ctx context.Context, id string) error {
	return c.send(ctx, transport.Call{
		Path:       pathPhoto,
		Method:     http.MethodDelete,
		PathParams: map[string]string{"id": id},
	})
}

func (c *HTTPClient) BatchDeletePhotos(ctx context.Context, ids []string) error {
	return c.send(ctx, transport.Call{
		Path:   pathPhotosBatchDelete,
		Method: http.MethodPost,
		Body:   codec.Encode(&proto.BatchDeletePhotosRequest{IDs: ids}),
	})
}

// GetUser returns nil, nil when the user does not exist.
func (c *HTTPClient) GetUser(ctx context.Context, id int32) (*models.User, error) {
	req, err := c.build(ctx, transport.Call{
		Path:   pathUser,
		Method: http.MethodGet,
		Query:  map[string]any{"id": id},
	})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.GetUserResponse](ctx, c.dispatcher, req)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	user := models.UserWithScopes(resp)
	return &user, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	req, err := c.build(ctx, transport.Call{Path: pathUserList, Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	resp, err := transport.Retrieve[proto.ListUserResponse](ctx, c.dispatcher, req)
	if err != nil {
		return nil, mapError(err)
	}

	users := make([]models.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, models.UserFromProto(u))
	}
	return users, nil
}
