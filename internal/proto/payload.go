package proto

import "google.golang.org/protobuf/encoding/protowire"

// AccessResponse is returned by the access-check endpoint. HasRequestedScope
// is only set when a scope was asked for; AllScopes otherwise.
type AccessResponse struct {
	Admin             bool
	HasRequestedScope *bool
	AllScopes         []string
}

func (m *AccessResponse) AppendWire(b []byte) []byte {
	if m.Admin {
		b = appendBool(b, 1, &m.Admin)
	}
	b = appendBool(b, 2, m.HasRequestedScope)
	b = appendStrings(b, 3, m.AllScopes)
	return b
}

func (m *AccessResponse) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			var admin *bool
			n, err := boolField(typ, b, &admin)
			if err != nil {
				return 0, err
			}
			m.Admin = *admin
			return n, nil
		case 2:
			return boolField(typ, b, &m.HasRequestedScope)
		case 3:
			return repeatedStringField(typ, b, &m.AllScopes)
		default:
			return skipField(num, typ, b)
		}
	})
}

type ListAlbumsResponse struct {
	Albums []*Album
}

func (m *ListAlbumsResponse) AppendWire(b []byte) []byte {
	for _, a := range m.Albums {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListAlbumsResponse) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedMessageField(typ, b, &m.Albums)
		}
		return skipField(num, typ, b)
	})
}

// SearchPhotosRequest narrows a photo search. An unset AlbumID searches all
// photos.
type SearchPhotosRequest struct {
	AlbumID *string
}

func (m *SearchPhotosRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.AlbumID)
}

func (m *SearchPhotosRequest) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return stringField(typ, b, &m.AlbumID)
		}
		return skipField(num, typ, b)
	})
}

type SearchPhotosResponse struct {
	Photos []*Photo
}

func (m *SearchPhotosResponse) AppendWire(b []byte) []byte {
	for _, p := range m.Photos {
		b = appendMessage(b, 1, p)
	}
	return b
}

func (m *SearchPhotosResponse) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedMessageField(typ, b, &m.Photos)
		}
		return skipField(num, typ, b)
	})
}

type BatchDeletePhotosRequest struct {
	IDs []string
}

func (m *BatchDeletePhotosRequest) AppendWire(b []byte) []byte {
	return appendStrings(b, 1, m.IDs)
}

func (m *BatchDeletePhotosRequest) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedStringField(typ, b, &m.IDs)
		}
		return skipField(num, typ, b)
	})
}

// CreatePhotoRequest carries the raw image bytes of a new photo.
type CreatePhotoRequest struct {
	AlbumID string
	Data    []byte
}

func (m *CreatePhotoRequest) AppendWire(b []byte) []byte {
	if m.AlbumID != "" {
		b = appendString(b, 1, &m.AlbumID)
	}
	b = appendBytes(b, 2, m.Data)
	return b
}

func (m *CreatePhotoRequest) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeStringValue(typ, b)
			if err != nil {
				return 0, err
			}
			m.AlbumID = v
			return n, nil
		case 2:
			return bytesField(typ, b, &m.Data)
		default:
			return skipField(num, typ, b)
		}
	})
}

type GetUserResponse struct {
	User   *User
	Scopes []*UserScope
}

func (m *GetUserResponse) AppendWire(b []byte) []byte {
	if m.User != nil {
		b = appendMessage(b, 1, m.User)
	}
	for _, s := range m.Scopes {
		b = appendMessage(b, 2, s)
	}
	return b
}

func (m *GetUserResponse) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return messageField(typ, b, &m.User)
		case 2:
			return repeatedMessageField(typ, b, &m.Scopes)
		default:
			return skipField(num, typ, b)
		}
	})
}

type ListUserResponse struct {
	Users []*User
}

func (m *ListUserResponse) AppendWire(b []byte) []byte {
	for _, u := range m.Users {
		b = appendMessage(b, 1, u)
	}
	return b
}

func (m *ListUserResponse) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedMessageField(typ, b, &m.Users)
		}
		return skipField(num, typ, b)
	})
}
