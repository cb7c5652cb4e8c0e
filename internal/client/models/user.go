package models

import (
	"time"

	"github.com/svsticky/chroma/internal/proto"
)

type User struct {
	ID     int32
	Name   string
	Scopes []Scope
}

// Scope is a permission held by a user.
type Scope struct {
	Name      string
	GrantedBy int32
	GrantedAt time.Time
}

func UserFromProto(m *proto.User) User {
	if m == nil {
		return User{}
	}
	return User{ID: deref(m.ID), Name: deref(m.Name)}
}

// UserWithScopes converts a user lookup response.
func UserWithScopes(m *proto.GetUserResponse) User {
	u := UserFromProto(m.User)
	for _, s := range m.Scopes {
		u.Scopes = append(u.Scopes, Scope{
			Name:      deref(s.Name),
			GrantedBy: deref(s.GrantedBy),
			GrantedAt: unixTime(s.GrantedAt),
		})
	}
	return u
}
