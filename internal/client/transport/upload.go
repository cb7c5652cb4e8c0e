package transport

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/svsticky/chroma/internal/codec"
)

// ProgressFunc receives the share of the request body sent so far, in
// percent. Values never decrease.
type ProgressFunc func(percent float64)

// Upload sends req.Body while reporting progress and decodes the response
// as a T. onProgress may be nil.
func Upload[T any, P codec.Pointer[T]](ctx context.Context, d *Dispatcher, req *Request, onProgress ProgressFunc) (P, error) {
	return UploadStream[T, P](ctx, d, req, bytes.NewReader(req.Body), int64(len(req.Body)), onProgress)
}

// UploadStream is Upload with the body read from r instead of req.Body.
// Progress is only reported when size is positive. No progress is reported
// after UploadStream returns.
func UploadStream[T any, P codec.Pointer[T]](ctx context.Context, d *Dispatcher, req *Request, r io.Reader, size int64, onProgress ProgressFunc) (P, error) {
	pr := &progressReader{r: r, total: size, onProgress: onProgress}
	resp, err := d.do(ctx, req, pr, size)
	pr.stop()
	if err != nil {
		return nil, err
	}
	return decode[T, P]("upload", resp)
}

// progressReader counts bytes as the HTTP transport consumes the body. The
// transport reads from its own goroutine, so reports are serialized under mu
// and suppressed once stop has been called.
type progressReader struct {
	r          io.Reader
	total      int64
	onProgress ProgressFunc

	mu      sync.Mutex
	sent    int64
	last    float64
	stopped bool
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.report(int64(n))
	}
	return n, err
}

func (p *progressReader) report(n int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || p.onProgress == nil || p.total <= 0 {
		return
	}
	p.sent += n
	pct := float64(p.sent) / float64(p.total) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < p.last {
		return
	}
	p.last = pct
	p.onProgress(pct)
}

func (p *progressReader) stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
}
