package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/config"
	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/services"
	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/client/transport"
	"github.com/svsticky/chroma/internal/filex"
	"github.com/svsticky/chroma/internal/logging"
)

// galleryService is the part of services.GalleryService the commands use.
type galleryService interface {
	Albums(ctx context.Context) ([]models.Album, error)
	Album(ctx context.Context, id string) (*models.Album, []models.Photo, error)
	CreateAlbum(ctx context.Context, name string, draft bool) (*models.Album, error)
	RenameAlbum(ctx context.Context, id, name string) (*models.Album, error)
	PublishAlbum(ctx context.Context, id string) (*models.Album, error)
	SetCover(ctx context.Context, albumID, photoID string) (*models.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
	Photos(ctx context.Context, albumID string) ([]models.Photo, error)
	Photo(ctx context.Context, id string, q models.Quality) (*models.Photo, error)
	DeletePhotos(ctx context.Context, ids []string) error
	UploadPhotos(ctx context.Context, albumID string, paths []string, onProgress services.UploadProgressFunc) ([]models.Photo, error)
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id int32) (*models.User, error)
}

type App struct {
	auth    services.AuthService
	gallery galleryService
	log     logging.Logger
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer
	role   session.Role
}

// NewApp opens the local database and wires the API client.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	dispatcher := transport.NewDispatcher(httpClient, log)
	store := services.NewTokenStore(db, cfg.APIBaseURL)
	validator := session.NewValidator(dispatcher, cfg.APIBaseURL, log)
	api := client.NewHTTPClient(dispatcher, store)

	return &App{
		auth:    services.NewAuthService(validator, store, cfg.MaxRetries),
		gallery: services.NewGalleryService(api, cfg.UploadConcurrency),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run shows the session status and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	printInfo(a.out, "Welcome to the Chroma CLI (type 'help' for commands)")
	_ = a.Status(ctx, nil)

	a.log.Debug(ctx, "repl started")
	runREPL(ctx, a, a.prompt, a.reader, a.out)
	a.log.Debug(ctx, "repl stopped")
}

func (a *App) prompt() string {
	if a.role == "" {
		return "chroma> "
	}
	return fmt.Sprintf("chroma (%s)> ", a.role)
}

func (a *App) isLoggedIn() bool {
	return a.role != ""
}
