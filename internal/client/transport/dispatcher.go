package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/svsticky/chroma/internal/codec"
	"github.com/svsticky/chroma/internal/logging"
)

// Response is a raw HTTP response with its body fully read.
// ContentLength is -1 when the server did not declare one.
type Response struct {
	Status        int
	Header        http.Header
	Body          []byte
	ContentLength int64
}

// HasMessage reports whether the response carries a message to decode:
// a 2xx other than 204 with a positive declared length, or a non-empty body
// of undeclared length.
func (r *Response) HasMessage() bool {
	if r.Status < 200 || r.Status > 299 || r.Status == http.StatusNoContent {
		return false
	}
	if r.ContentLength < 0 {
		return len(r.Body) > 0
	}
	return r.ContentLength > 0
}

// Err returns nil for a 2xx response and the matching status error
// otherwise. It is meant for calls that expect no message.
func (r *Response) Err() error {
	if r.Status >= 200 && r.Status <= 299 {
		return nil
	}
	return newStatusError("request", r)
}

// Dispatcher executes built requests. It is safe for concurrent use.
type Dispatcher struct {
	client *http.Client
	log    logging.Logger
}

// NewDispatcher returns a Dispatcher using client, or http.DefaultClient
// when nil.
func NewDispatcher(client *http.Client, log logging.Logger) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Dispatcher{client: client, log: log}
}

// Send performs req and returns the raw response whatever its status.
func (d *Dispatcher) Send(ctx context.Context, req *Request) (*Response, error) {
	return d.do(ctx, req, bytes.NewReader(req.Body), int64(len(req.Body)))
}

// Retrieve performs req and decodes the body as a T.
//
//	album, err := transport.Retrieve[proto.Album](ctx, d, req)
func Retrieve[T any, P codec.Pointer[T]](ctx context.Context, d *Dispatcher, req *Request) (P, error) {
	resp, err := d.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return decode[T, P]("request", resp)
}

func decode[T any, P codec.Pointer[T]](op string, resp *Response) (P, error) {
	if !resp.HasMessage() {
		return nil, newStatusError(op, resp)
	}
	return codec.Decode[T, P](resp.Body)
}

func (d *Dispatcher) do(ctx context.Context, req *Request, body io.Reader, size int64) (*Response, error) {
	if size == 0 {
		body = http.NoBody
	}
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	hreq.Header = req.Header.Clone()
	if size > 0 {
		hreq.ContentLength = size
	}

	start := time.Now()
	resp, err := d.client.Do(hreq)
	if err != nil {
		return nil, d.failure(ctx, req, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, d.failure(ctx, req, err)
	}

	d.log.Debug(ctx, "api exchange",
		"method", req.Method,
		"url", req.URL,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Since(start),
	)

	return &Response{
		Status:        resp.StatusCode,
		Header:        resp.Header,
		Body:          data,
		ContentLength: resp.ContentLength,
	}, nil
}

func (d *Dispatcher) failure(ctx context.Context, req *Request, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	d.log.Warn(ctx, "api unreachable", "method", req.Method, "url", req.URL, "error", err)
	return fmt.Errorf("%w: %w", ErrUnreachable, err)
}
