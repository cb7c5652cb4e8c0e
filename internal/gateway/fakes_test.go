package gateway

import (
	"context"
	"sync"

	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/session"
)

// fakeChecker returns decisions in order, repeating the last one.
type fakeChecker struct {
	mu        sync.Mutex
	decisions []session.AccessDecision
	tokens    []string
}

func (f *fakeChecker) Validate(_ context.Context, token string) session.AccessDecision {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	d := f.decisions[0]
	if len(f.decisions) > 1 {
		f.decisions = f.decisions[1:]
	}
	return d
}

func (f *fakeChecker) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tokens)
}

type fakeGallery struct {
	albums     []models.Album
	album      *models.Album
	photo      *models.Photo
	err        error
	gotQuality models.Quality
	gotToken   string
}

func (f *fakeGallery) ListAlbums(ctx context.Context) ([]models.Album, error) {
	f.gotToken, _ = session.TokenFromContext(ctx)
	return f.albums, f.err
}

func (f *fakeGallery) GetAlbum(context.Context, string) (*models.Album, error) {
	return f.album, f.err
}

func (f *fakeGallery) GetPhoto(_ context.Context, _ string, q models.Quality) (*models.Photo, error) {
	f.gotQuality = q
	return f.photo, f.err
}
