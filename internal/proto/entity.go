package proto

import "google.golang.org/protobuf/encoding/protowire"

// User is a Koala user known to Chroma.
type User struct {
	ID   *int32
	Name *string
}

func (m *User) AppendWire(b []byte) []byte {
	b = appendInt32(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	return b
}

func (m *User) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return int32Field(typ, b, &m.ID)
		case 2:
			return stringField(typ, b, &m.Name)
		default:
			return skipField(num, typ, b)
		}
	})
}

// UserScope is a permission granted to a user.
type UserScope struct {
	Name      *string
	GrantedBy *int32
	GrantedAt *int64
}

func (m *UserScope) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendInt32(b, 2, m.GrantedBy)
	b = appendInt64(b, 3, m.GrantedAt)
	return b
}

func (m *UserScope) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, b, &m.Name)
		case 2:
			return int32Field(typ, b, &m.GrantedBy)
		case 3:
			return int64Field(typ, b, &m.GrantedAt)
		default:
			return skipField(num, typ, b)
		}
	})
}

type PhotoDimensions struct {
	Width  *int32
	Height *int32
}

func (m *PhotoDimensions) AppendWire(b []byte) []byte {
	b = appendInt32(b, 1, m.Width)
	b = appendInt32(b, 2, m.Height)
	return b
}

func (m *PhotoDimensions) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return int32Field(typ, b, &m.Width)
		case 2:
			return int32Field(typ, b, &m.Height)
		default:
			return skipField(num, typ, b)
		}
	})
}

// PhotoURL points at one rendition of a photo. Size carries the quality tier
// the rendition was produced for (e.g. "W400").
type PhotoURL struct {
	URL        *string
	Size       *string
	Dimensions *PhotoDimensions
}

func (m *PhotoURL) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.URL)
	b = appendString(b, 2, m.Size)
	if m.Dimensions != nil {
		b = appendMessage(b, 3, m.Dimensions)
	}
	return b
}

func (m *PhotoURL) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, b, &m.URL)
		case 2:
			return stringField(typ, b, &m.Size)
		case 3:
			return messageField(typ, b, &m.Dimensions)
		default:
			return skipField(num, typ, b)
		}
	})
}

type PhotoMedia struct {
	URLs []*PhotoURL
}

func (m *PhotoMedia) AppendWire(b []byte) []byte {
	for _, u := range m.URLs {
		b = appendMessage(b, 1, u)
	}
	return b
}

func (m *PhotoMedia) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedMessageField(typ, b, &m.URLs)
		}
		return skipField(num, typ, b)
	})
}

type PhotoAlbum struct {
	ID *string
}

func (m *PhotoAlbum) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *PhotoAlbum) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return stringField(typ, b, &m.ID)
		}
		return skipField(num, typ, b)
	})
}

type PhotoLinks struct {
	Albums []*PhotoAlbum
}

func (m *PhotoLinks) AppendWire(b []byte) []byte {
	for _, a := range m.Albums {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *PhotoLinks) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedMessageField(typ, b, &m.Albums)
		}
		return skipField(num, typ, b)
	})
}

type PhotoExif struct {
	Key   *string
	Value *string
}

func (m *PhotoExif) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Key)
	b = appendString(b, 2, m.Value)
	return b
}

func (m *PhotoExif) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, b, &m.Key)
		case 2:
			return stringField(typ, b, &m.Value)
		default:
			return skipField(num, typ, b)
		}
	})
}

type PhotoMetadata struct {
	Exif []*PhotoExif
}

func (m *PhotoMetadata) AppendWire(b []byte) []byte {
	for _, e := range m.Exif {
		b = appendMessage(b, 1, e)
	}
	return b
}

func (m *PhotoMetadata) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return repeatedMessageField(typ, b, &m.Exif)
		}
		return skipField(num, typ, b)
	})
}

// Photo is a single photo with its renditions and EXIF metadata.
// Timestamps are unix seconds.
type Photo struct {
	ID         *string
	UploadedAt *int64
	UploadedBy *User
	CapturedAt *int64
	Linked     *PhotoLinks
	Media      *PhotoMedia
	Metadata   *PhotoMetadata
}

func (m *Photo) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendInt64(b, 2, m.UploadedAt)
	if m.UploadedBy != nil {
		b = appendMessage(b, 3, m.UploadedBy)
	}
	b = appendInt64(b, 4, m.CapturedAt)
	if m.Linked != nil {
		b = appendMessage(b, 5, m.Linked)
	}
	if m.Media != nil {
		b = appendMessage(b, 6, m.Media)
	}
	if m.Metadata != nil {
		b = appendMessage(b, 7, m.Metadata)
	}
	return b
}

func (m *Photo) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, b, &m.ID)
		case 2:
			return int64Field(typ, b, &m.UploadedAt)
		case 3:
			return messageField(typ, b, &m.UploadedBy)
		case 4:
			return int64Field(typ, b, &m.CapturedAt)
		case 5:
			return messageField(typ, b, &m.Linked)
		case 6:
			return messageField(typ, b, &m.Media)
		case 7:
			return messageField(typ, b, &m.Metadata)
		default:
			return skipField(num, typ, b)
		}
	})
}

// Album groups photos. An unpublished album is a draft and only visible to
// admins and its creator.
type Album struct {
	ID          *string
	Name        *string
	CreatedAt   *int64
	CreatedBy   *User
	CoverPhoto  *Photo
	Published   *bool
	PublishedAt *int64
	PublishedBy *User
}

func (m *Album) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	b = appendInt64(b, 3, m.CreatedAt)
	if m.CreatedBy != nil {
		b = appendMessage(b, 4, m.CreatedBy)
	}
	if m.CoverPhoto != nil {
		b = appendMessage(b, 5, m.CoverPhoto)
	}
	b = appendBool(b, 6, m.Published)
	b = appendInt64(b, 7, m.PublishedAt)
	if m.PublishedBy != nil {
		b = appendMessage(b, 8, m.PublishedBy)
	}
	return b
}

func (m *Album) ConsumeWire(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, b, &m.ID)
		case 2:
			return stringField(typ, b, &m.Name)
		case 3:
			return int64Field(typ, b, &m.CreatedAt)
		case 4:
			return messageField(typ, b, &m.CreatedBy)
		case 5:
			return messageField(typ, b, &m.CoverPhoto)
		case 6:
			return boolField(typ, b, &m.Published)
		case 7:
			return int64Field(typ, b, &m.PublishedAt)
		case 8:
			return messageField(typ, b, &m.PublishedBy)
		default:
			return skipField(num, typ, b)
		}
	})
}
