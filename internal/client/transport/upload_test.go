package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svsticky/chroma/internal/codec"
	"github.com/svsticky/chroma/internal/proto"
)

type progressLog struct {
	mu     sync.Mutex
	values []float64
}

func (l *progressLog) record(p float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = append(l.values, p)
}

func (l *progressLog) snapshot() []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]float64(nil), l.values...)
}

func uploadRequest(t *testing.T, base string, body []byte) *Request {
	t.Helper()
	req, err := Build(Call{Path: "/api/v2/photos", Method: http.MethodPost, Body: body}, Config{BaseURL: base, Token: "tok"})
	require.NoError(t, err)
	return req
}

func photoServer(t *testing.T, gotBody *[]byte) *httptest.Server {
	t.Helper()
	return newServer(t, func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if gotBody != nil {
			*gotBody = b
		}
		_, _ = w.Write(codec.Encode(&proto.Photo{ID: proto.String("p1")}))
	})
}

func TestUpload_ProgressIsMonotonicAndEndsAt100(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 1<<20)
	var received []byte
	srv := photoServer(t, &received)

	var log progressLog
	photo, err := Upload[proto.Photo](context.Background(), NewDispatcher(srv.Client(), nil), uploadRequest(t, srv.URL, payload), log.record)
	require.NoError(t, err)
	assert.Equal(t, "p1", *photo.ID)
	assert.Len(t, received, len(payload))

	values := log.snapshot()
	require.NotEmpty(t, values)
	for i, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
		if i > 0 {
			assert.GreaterOrEqual(t, v, values[i-1])
		}
	}
	assert.Equal(t, 100.0, values[len(values)-1])

	// Nothing arrives once Upload has returned.
	assert.Len(t, log.snapshot(), len(values))
}

func TestUpload_EmptyBodyReportsNothing(t *testing.T) {
	srv := photoServer(t, nil)

	var log progressLog
	_, err := Upload[proto.Photo](context.Background(), NewDispatcher(srv.Client(), nil), uploadRequest(t, srv.URL, nil), log.record)
	require.NoError(t, err)
	assert.Empty(t, log.snapshot())
}

func TestUploadStream_UnknownSizeReportsNothing(t *testing.T) {
	var received []byte
	srv := photoServer(t, &received)

	var log progressLog
	body := io.MultiReader(bytes.NewReader([]byte("abc")), bytes.NewReader([]byte("def")))
	_, err := UploadStream[proto.Photo](context.Background(), NewDispatcher(srv.Client(), nil), uploadRequest(t, srv.URL, nil), body, -1, log.record)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdef"), received)
	assert.Empty(t, log.snapshot())
}

func TestUpload_NilProgress(t *testing.T) {
	srv := photoServer(t, nil)

	_, err := Upload[proto.Photo](context.Background(), NewDispatcher(srv.Client(), nil), uploadRequest(t, srv.URL, []byte("data")), nil)
	require.NoError(t, err)
}

func TestUpload_StatusFailure(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := Upload[proto.Photo](context.Background(), NewDispatcher(srv.Client(), nil), uploadRequest(t, srv.URL, []byte("data")), nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "upload failed with status: 500", err.Error())
	assert.False(t, errors.Is(err, ErrUnreachable))
}

func TestUpload_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := Upload[proto.Photo](context.Background(), NewDispatcher(nil, nil), uploadRequest(t, base, []byte("data")), nil)
	require.ErrorIs(t, err, ErrUnreachable)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestProgressReader_StopSuppressesReports(t *testing.T) {
	var log progressLog
	pr := &progressReader{r: bytes.NewReader(make([]byte, 10)), total: 10, onProgress: log.record}

	buf := make([]byte, 4)
	_, _ = pr.Read(buf)
	pr.stop()
	_, _ = pr.Read(buf)

	assert.Equal(t, []float64{40}, log.snapshot())
}
