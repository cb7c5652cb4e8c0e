package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/svsticky/chroma/internal/codec"
)

var (
	ErrMissingPathParam  = errors.New("missing path parameter")
	ErrBodyNotAllowed    = errors.New("body not allowed for method")
	ErrInvalidMethod     = errors.New("invalid method")
	ErrInvalidQueryValue = errors.New("invalid query value")
)

// Call is a logical API call before the per-call Config is applied.
type Call struct {
	// Path may contain {name} placeholders filled from PathParams.
	Path       string
	Method     string
	PathParams map[string]string
	// Body is an already encoded message. It must be empty for GET.
	Body []byte
	// Query values must be scalars; []string is joined with ','.
	Query map[string]any
	// Header holds extra headers. Content-Type, Accept and Authorization are
	// always set by Build and cannot be overridden here.
	Header map[string]string
}

// Config is resolved fresh for every call. An empty Token means no session.
type Config struct {
	BaseURL string
	Token   string
}

// ConfigResolver supplies the Config of a call.
type ConfigResolver interface {
	Resolve(ctx context.Context) (Config, error)
}

// ConfigResolverFunc adapts a function to ConfigResolver.
type ConfigResolverFunc func(ctx context.Context) (Config, error)

func (f ConfigResolverFunc) Resolve(ctx context.Context) (Config, error) {
	return f(ctx)
}

// Request is a fully built HTTP request description.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

var reservedHeaders = map[string]struct{}{
	"Content-Type":  {},
	"Accept":        {},
	"Authorization": {},
}

// Build resolves a Call against cfg.
func Build(call Call, cfg Config) (*Request, error) {
	method := strings.ToUpper(call.Method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, call.Method)
	}
	if method == http.MethodGet && len(call.Body) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBodyNotAllowed, method)
	}

	path, err := expandPath(call.Path, call.PathParams)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := strings.TrimRight(cfg.BaseURL, "/") + path
	if len(call.Query) > 0 {
		q, err := encodeQuery(call.Query)
		if err != nil {
			return nil, err
		}
		if q != "" {
			u += "?" + q
		}
	}

	h := make(http.Header, len(call.Header)+3)
	for k, v := range call.Header {
		key := http.CanonicalHeaderKey(k)
		if _, ok := reservedHeaders[key]; ok {
			continue
		}
		h.Set(key, v)
	}
	h.Set("Content-Type", codec.MediaType)
	h.Set("Accept", codec.MediaType)
	if cfg.Token != "" {
		h.Set("Authorization", cfg.Token)
	}

	return &Request{
		Method: method,
		URL:    u,
		Header: h,
		Body:   call.Body,
	}, nil
}

func expandPath(path string, params map[string]string) (string, error) {
	var b strings.Builder
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			b.WriteString(path)
			return b.String(), nil
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			b.WriteString(path)
			return b.String(), nil
		}
		end += start

		name := path[start+1 : end]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingPathParam, name)
		}
		b.WriteString(path[:start])
		b.WriteString(url.PathEscape(value))
		path = path[end+1:]
	}
}

func encodeQuery(query map[string]any) (string, error) {
	values := make(url.Values, len(query))
	for k, v := range query {
		if v == nil {
			continue
		}
		s, err := queryValue(v)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidQueryValue, k, err)
		}
		values.Set(k, s)
	}
	// url.Values.Encode sorts by key.
	return values.Encode(), nil
}

func queryValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case []string:
		return strings.Join(x, ","), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}
