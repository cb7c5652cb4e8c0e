package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/svsticky/chroma/internal/client/client"
	"github.com/svsticky/chroma/internal/client/models"
	"github.com/svsticky/chroma/internal/client/session"
)

type albumView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Published    bool       `json:"published"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	CoverPhotoID string     `json:"coverPhotoId,omitempty"`
}

type photoView struct {
	ID         string            `json:"id"`
	CapturedAt *time.Time        `json:"capturedAt,omitempty"`
	URL        string            `json:"url,omitempty"`
	Width      int32             `json:"width,omitempty"`
	Height     int32             `json:"height,omitempty"`
	Exif       map[string]string `json:"exif,omitempty"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func newAlbumView(a models.Album) albumView {
	v := albumView{ID: a.ID, Name: a.Name, Published: a.Published, CreatedAt: timePtr(a.CreatedAt)}
	if a.CoverPhoto != nil {
		v.CoverPhotoID = a.CoverPhoto.ID
	}
	return v
}

func (s *Server) whoami(w http.ResponseWriter, r *http.Request) {
	role, _ := session.RoleFromContext(r.Context())
	s.writeJSON(w, r, http.StatusOK, map[string]string{"role": string(role)})
}

func (s *Server) listAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := s.gallery.ListAlbums(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	views := make([]albumView, 0, len(albums))
	for _, a := range albums {
		views = append(views, newAlbumView(a))
	}
	s.writeJSON(w, r, http.StatusOK, views)
}

func (s *Server) getAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := s.gallery.GetAlbum(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if album == nil {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, r, http.StatusOK, newAlbumView(*album))
}

// getPhoto serves one photo. quality defaults to preview.
func (s *Server) getPhoto(w http.ResponseWriter, r *http.Request) {
	q := models.Preview
	if raw := r.URL.Query().Get("quality"); raw != "" {
		var err error
		if q, err = models.ParseQuality(raw); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	photo, err := s.gallery.GetPhoto(r.Context(), r.PathValue("id"), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if photo == nil {
		http.NotFound(w, r)
		return
	}

	v := photoView{ID: photo.ID, CapturedAt: timePtr(photo.CapturedAt), Exif: photo.Exif}
	if u, ok := photo.URL(q); ok {
		v.URL, v.Width, v.Height = u.URL, u.Width, u.Height
	}
	s.writeJSON(w, r, http.StatusOK, v)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		loggerFrom(r.Context(), s.log).Warn(r.Context(), "writing response", "error", err)
	}
}

// writeError maps upstream failures onto gateway statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, client.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, client.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, client.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, client.ErrUnavailable):
		status = http.StatusGatewayTimeout
	}
	loggerFrom(r.Context(), s.log).Warn(r.Context(), "upstream call failed", "error", err, "status", status)
	http.Error(w, http.StatusText(status), status)
}
