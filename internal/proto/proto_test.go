package proto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func roundTrip[T any, P interface {
	*T
	wireMessage
}](t *testing.T, in P) P {
	t.Helper()
	out := P(new(T))
	require.NoError(t, out.ConsumeWire(in.AppendWire(nil)))
	return out
}

func TestPhoto_RoundTrip(t *testing.T) {
	in := &Photo{
		ID:         String("p1"),
		UploadedAt: Int64(1700000000),
		UploadedBy: &User{ID: Int32(-3), Name: String("admin")},
		CapturedAt: Int64(1690000000),
		Linked:     &PhotoLinks{Albums: []*PhotoAlbum{{ID: String("a1")}, {ID: String("a2")}}},
		Media: &PhotoMedia{URLs: []*PhotoURL{{
			URL:        String("https://cdn.example/p1_w400.webp"),
			Size:       String("W400"),
			Dimensions: &PhotoDimensions{Width: Int32(400), Height: Int32(300)},
		}}},
		Metadata: &PhotoMetadata{Exif: []*PhotoExif{{Key: String("Make"), Value: String("FUJIFILM")}}},
	}

	require.Empty(t, cmp.Diff(in, roundTrip(t, in)))
}

func TestPayloads_RoundTrip(t *testing.T) {
	t.Run("access", func(t *testing.T) {
		in := &AccessResponse{Admin: true, AllScopes: []string{"nl.svsticky.chroma.photos.create"}}
		require.Empty(t, cmp.Diff(in, roundTrip(t, in)))
	})
	t.Run("create photo", func(t *testing.T) {
		in := &CreatePhotoRequest{AlbumID: "a1", Data: []byte{0xff, 0xd8, 0xff}}
		require.Empty(t, cmp.Diff(in, roundTrip(t, in)))
	})
	t.Run("batch delete", func(t *testing.T) {
		in := &BatchDeletePhotosRequest{IDs: []string{"p1", "p2"}}
		require.Empty(t, cmp.Diff(in, roundTrip(t, in)))
	})
	t.Run("get user", func(t *testing.T) {
		in := &GetUserResponse{
			User:   &User{ID: Int32(1), Name: String("u")},
			Scopes: []*UserScope{{Name: String("s"), GrantedBy: Int32(2), GrantedAt: Int64(3)}},
		}
		require.Empty(t, cmp.Diff(in, roundTrip(t, in)))
	})
	t.Run("list albums", func(t *testing.T) {
		in := &ListAlbumsResponse{Albums: []*Album{{ID: String("a"), CoverPhoto: &Photo{ID: String("p")}}}}
		require.Empty(t, cmp.Diff(in, roundTrip(t, in)))
	})
}

func TestOptionalFields_AbsentWhenNil(t *testing.T) {
	require.Empty(t, (&Album{}).AppendWire(nil))
	require.Empty(t, (&AccessResponse{}).AppendWire(nil))
}

func TestConsumeWire_SkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer server")
	b = appendString(b, 2, String("name"))

	var u User
	require.NoError(t, u.ConsumeWire(b))
	require.Equal(t, "name", *u.Name)
	require.Nil(t, u.ID)
}

func TestConsumeWire_RejectsInvalidUTF8(t *testing.T) {
	invalid := string([]byte{0xff, 0xfe})

	var a Album
	require.ErrorIs(t, a.ConsumeWire(appendString(nil, 2, &invalid)), errInvalidUTF8)

	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, invalid)
	var req CreatePhotoRequest
	require.ErrorIs(t, req.ConsumeWire(b), errInvalidUTF8)

	var access AccessResponse
	require.ErrorIs(t, access.ConsumeWire(appendString(nil, 3, &invalid)), errInvalidUTF8)
}
