// Package models defines the plain domain values the Chroma client hands to
// its callers, and their conversion from API messages.
package models

import (
	"time"

	"github.com/svsticky/chroma/internal/proto"
)

// Album is a named collection of photos. A draft album has Published false.
type Album struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	CreatedBy   *User
	CoverPhoto  *Photo
	Published   bool
	PublishedAt time.Time
	PublishedBy *User
}

// AlbumFromProto converts an API album. Absent fields keep their zero value.
func AlbumFromProto(m *proto.Album) Album {
	if m == nil {
		return Album{}
	}
	a := Album{
		ID:          deref(m.ID),
		Name:        deref(m.Name),
		CreatedAt:   unixTime(m.CreatedAt),
		Published:   deref(m.Published),
		PublishedAt: unixTime(m.PublishedAt),
	}
	if m.CreatedBy != nil {
		u := UserFromProto(m.CreatedBy)
		a.CreatedBy = &u
	}
	if m.PublishedBy != nil {
		u := UserFromProto(m.PublishedBy)
		a.PublishedBy = &u
	}
	if m.CoverPhoto != nil {
		p := PhotoFromProto(m.CoverPhoto)
		a.CoverPhoto = &p
	}
	return a
}

// AlbumPatch lists the album fields to change. Nil fields are left alone.
type AlbumPatch struct {
	Name         *string
	CoverPhotoID *string
	Published    *bool
}

// Empty reports whether the patch changes nothing.
func (p AlbumPatch) Empty() bool {
	return p.Name == nil && p.CoverPhotoID == nil && p.Published == nil
}

// Object returns the patch as a plain nested object keyed by API field
// names, the shape the update mask is computed from.
func (p AlbumPatch) Object() map[string]any {
	obj := make(map[string]any, 3)
	if p.Name != nil {
		obj["name"] = *p.Name
	}
	if p.CoverPhotoID != nil {
		obj["coverPhoto"] = map[string]any{"id": *p.CoverPhotoID}
	}
	if p.Published != nil {
		obj["published"] = *p.Published
	}
	return obj
}

// Proto returns the album message carrying the patched fields.
func (p AlbumPatch) Proto(id string) *proto.Album {
	m := &proto.Album{ID: proto.String(id), Name: p.Name, Published: p.Published}
	if p.CoverPhotoID != nil {
		m.CoverPhoto = &proto.Photo{ID: p.CoverPhotoID}
	}
	return m
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func unixTime(sec *int64) time.Time {
	if sec == nil {
		return time.Time{}
	}
	return time.Unix(*sec, 0).UTC()
}
