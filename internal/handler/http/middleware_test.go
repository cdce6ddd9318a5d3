package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/utils"
)

func newMiddlewareHandler(l *logger.Logger) *Handler {
	return &Handler{logger: l, traceIDs: utils.NewUUIDGenerator()}
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	r, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(body)
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	var buf bytes.Buffer
	h := newMiddlewareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	h := newMiddlewareHandler(logger.Nop())
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		seen[id.String()] = struct{}{}
	}

	assert.Len(t, seen, 10)
}

// ─────────────────────────────────────────────
// withLogging / responseWriter
// ─────────────────────────────────────────────

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := newMiddlewareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sections", nil)
	rec := httptest.NewRecorder()
	// withTraceID puts the logger into the request context
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/sections"`)
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := newMiddlewareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNoContent)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNoContent, w.status)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("abc"))
	w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
	assert.Same(t, rec, w.Unwrap())
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestGZip_CompressesWhenAccepted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1}]`))
	})

	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzip: true},
		{name: "identity", acceptEncoding: "", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, `[{"id":1}]`, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, `[{"id":1}]`, rec.Body.String())
		})
	}
}

func TestGZip_NoContentIsNotCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"name":"A"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		r.Body.Close()
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, `{"name":"A"}`, got)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed = true }}

	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
