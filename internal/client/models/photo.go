package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/svsticky/chroma/internal/proto"
)

// Quality is the rendition size requested for a photo.
type Quality int

const (
	Thumbnail Quality = iota
	Preview
	Original
)

// String returns the API name of the quality tier.
func (q Quality) String() string {
	switch q {
	case Thumbnail:
		return "W400"
	case Preview:
		return "W1600"
	case Original:
		return "Original"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality accepts "thumbnail", "preview" or "original", case-insensitively.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thumbnail":
		return Thumbnail, nil
	case "preview":
		return Preview, nil
	case "original":
		return Original, nil
	default:
		return 0, fmt.Errorf("unknown quality %q", s)
	}
}

type PhotoURL struct {
	URL    string
	Size   string
	Width  int32
	Height int32
}

type Photo struct {
	ID         string
	UploadedAt time.Time
	UploadedBy *User
	CapturedAt time.Time
	AlbumIDs   []string
	URLs       []PhotoURL
	Exif       map[string]string
}

// URL returns the rendition produced for q, if the API sent one.
func (p Photo) URL(q Quality) (PhotoURL, bool) {
	for _, u := range p.URLs {
		if u.Size == q.String() {
			return u, true
		}
	}
	return PhotoURL{}, false
}

func PhotoFromProto(m *proto.Photo) Photo {
	if m == nil {
		return Photo{}
	}
	p := Photo{
		ID:         deref(m.ID),
		UploadedAt: unixTime(m.UploadedAt),
		CapturedAt: unixTime(m.CapturedAt),
	}
	if m.UploadedBy != nil {
		u := UserFromProto(m.UploadedBy)
		p.UploadedBy = &u
	}
	if m.Linked != nil {
		for _, a := range m.Linked.Albums {
			p.AlbumIDs = append(p.AlbumIDs, deref(a.ID))
		}
	}
	if m.Media != nil {
		for _, u := range m.Media.URLs {
			pu := PhotoURL{URL: deref(u.URL), Size: deref(u.Size)}
			if u.Dimensions != nil {
				pu.Width = deref(u.Dimensions.Width)
				pu.Height = deref(u.Dimensions.Height)
			}
			p.URLs = append(p.URLs, pu)
		}
	}
	if m.Metadata != nil && len(m.Metadata.Exif) > 0 {
		p.Exif = make(map[string]string, len(m.Metadata.Exif))
		for _, e := range m.Metadata.Exif {
			p.Exif[deref(e.Key)] = deref(e.Value)
		}
	}
	return p
}
