package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// Source supplies the raw bytes of a form contract so builders can operate on
// files, in-memory payloads, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
	Read(ctx context.Context) ([]byte, error)
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindBytes SourceKind = "bytes"
	SourceKindURL   SourceKind = "url"
)

// fileSource identifies on-disk contract documents.
type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }

func (s fileSource) Location() string { return s.path }

func (s fileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.path)
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// bytesSource wraps an in-memory payload, e.g. the embedded contract.
type bytesSource struct {
	label string
	raw   []byte
}

func (s bytesSource) Kind() SourceKind { return SourceKindBytes }

func (s bytesSource) Location() string { return s.label }

func (s bytesSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.raw) == 0 {
		return nil, errors.New("schema: byte source is empty")
	}
	return append([]byte(nil), s.raw...), nil
}

// SourceFromBytes wraps a raw payload under a descriptive label.
func SourceFromBytes(label string, raw []byte) Source {
	return bytesSource{label: label, raw: raw}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Kind() SourceKind { return SourceKindURL }

func (s urlSource) Location() string { return s.raw }

func (s urlSource) Read(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.raw, nil)
	if err != nil {
		return nil, fmt.Errorf("schema: build request for %q: %w", s.raw, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schema: fetch %q: %w", s.raw, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schema: fetch %q: unexpected status %d", s.raw, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("schema: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// BuildFrom reads an OpenAPI contract from the source and extracts the named
// operation.
func BuildFrom(ctx context.Context, src Source, operationID string) (FormModel, error) {
	raw, err := readSource(ctx, src)
	if err != nil {
		return FormModel{}, err
	}
	return NewBuilder(Options{}).Build(ctx, raw, operationID)
}

// OverrideFrom reads a direct form definition document from the source.
func OverrideFrom(ctx context.Context, src Source) (FormModel, error) {
	raw, err := readSource(ctx, src)
	if err != nil {
		return FormModel{}, err
	}
	return ParseOverride(raw)
}

func readSource(ctx context.Context, src Source) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("schema: context is required")
	}
	if src == nil {
		return nil, errors.New("schema: source is required")
	}
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s source %q: %w", src.Kind(), src.Location(), err)
	}
	return raw, nil
}
