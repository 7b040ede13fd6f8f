package querybuilder

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// RequestBuilder assembles a backend path with escaped segments and a query string.
type RequestBuilder struct {
	segments []string
	query    url.Values
	err      error
}

// Path starts a request path, e.g. Path("api", "teams").
func Path(segments ...string) *RequestBuilder {
	b := &RequestBuilder{query: url.Values{}}
	for _, s := range segments {
		b.Segment(s)
	}
	return b
}

// Segment appends one escaped path segment. Empty segments are rejected.
func (b *RequestBuilder) Segment(value any) *RequestBuilder {
	raw := strings.TrimSpace(fmt.Sprint(value))
	if raw == "" {
		if b.err == nil {
			b.err = fmt.Errorf("path segment %d is empty", len(b.segments))
		}
		return b
	}
	b.segments = append(b.segments, url.PathEscape(raw))
	return b
}

// ID appends a positive numeric identifier segment.
func (b *RequestBuilder) ID(id int64) *RequestBuilder {
	if id <= 0 {
		if b.err == nil {
			b.err = fmt.Errorf("id must be > 0, got %d", id)
		}
		return b
	}
	b.segments = append(b.segments, strconv.FormatInt(id, 10))
	return b
}

func (b *RequestBuilder) Set(key, value string) *RequestBuilder {
	if key == "" {
		return b
	}
	b.query.Set(key, value)
	return b
}

func (b *RequestBuilder) SetInt(key string, value int) *RequestBuilder {
	return b.Set(key, strconv.Itoa(value))
}

// Merge copies every key of values into the query, replacing existing keys.
func (b *RequestBuilder) Merge(values url.Values) *RequestBuilder {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.query[k] = append([]string(nil), values[k]...)
	}
	return b
}

// ToURL returns the request target relative to the backend base URL.
func (b *RequestBuilder) ToURL() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if len(b.segments) == 0 {
		return "", fmt.Errorf("path is required")
	}

	var buf strings.Builder
	for _, s := range b.segments {
		buf.WriteByte('/')
		buf.WriteString(s)
	}
	if len(b.query) > 0 {
		buf.WriteByte('?')
		buf.WriteString(b.query.Encode())
	}
	return buf.String(), nil
}

// Query returns a copy of the accumulated query parameters.
func (b *RequestBuilder) Query() url.Values {
	out := make(url.Values, len(b.query))
	for k, v := range b.query {
		out[k] = append([]string(nil), v...)
	}
	return out
}
