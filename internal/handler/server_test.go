package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/photo-tagger/internal/domain"
	"github.com/pkordes/photo-tagger/internal/handler"
	"github.com/pkordes/photo-tagger/internal/repo"
	"github.com/pkordes/photo-tagger/internal/service"
)

// ---- fake LibraryRepo -------------------------------------------------------

// fakeLibrary serves a fixed folder listing. A non-nil err is returned instead.
type fakeLibrary struct {
	names []string
	err   error
}

func (f *fakeLibrary) ListFiles(_ context.Context, dir string) ([]repo.FileEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repo.FileEntry, len(f.names))
	for i, n := range f.names {
		out[i] = repo.FileEntry{Name: n, Path: filepath.Join(dir, n)}
	}
	return out, nil
}

// compile-time check
var _ repo.LibraryRepo = (*fakeLibrary)(nil)

// ---- mock ExportServicer ----------------------------------------------------

type mockExportServicer struct {
	exportByTag func(ctx context.Context, set service.PhotoSet, tag, destRoot string) (domain.ExportReport, error)
}

func (m *mockExportServicer) ExportByTag(ctx context.Context, set service.PhotoSet, tag, destRoot string) (domain.ExportReport, error) {
	return m.exportByTag(ctx, set, tag, destRoot)
}

// compile-time check: mockExportServicer must satisfy handler.ExportServicer.
var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ----------------------------------------------------------------

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer returns the routed handler together with the real collection
// behind it, so tests can arrange state directly. Pass a nil exporter when the
// test does not export.
func newTestServer(library repo.LibraryRepo, exporter handler.ExportServicer, opts ...handler.Option) (http.Handler, *service.Collection) {
	coll := service.NewCollection(library, quietLogger())
	opts = append([]handler.Option{handler.WithLogger(quietLogger())}, opts...)
	srv := handler.NewServer(coll, exporter, opts...)
	return srv.Routes(), coll
}

// importedServer returns a server whose collection holds names under /photos.
func importedServer(t *testing.T, names ...string) (http.Handler, *service.Collection) {
	t.Helper()
	h, coll := newTestServer(&fakeLibrary{names: names}, nil)
	_, err := coll.Import(context.Background(), "/photos")
	require.NoError(t, err)
	return h, coll
}

// do sends a request through h. A non-nil body is JSON-encoded.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

// decode unmarshals the recorded body into a fresh T.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// mustField returns the raw JSON of one top-level field of body.
func mustField(t *testing.T, body []byte, name string) string {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, ok := fields[name]
	require.True(t, ok, "field %q missing", name)
	return string(raw)
}

var errDisk = errors.New("disk on fire")
