// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/models"
)

func newTestAdapter(t *testing.T, serverURL string) SectionsAdapter {
	t.Helper()

	a, err := NewHTTPSectionsAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://sections.example/", want: "https://sections.example"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPSectionsAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPSectionsAdapter(config.Adapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── List / Get ──────────────────────────────────────────────────────────────

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sections", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.HiveSectionListItem{{ID: 1, Name: "Dairy", Code: "DRY"}})
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.HiveSectionListItem{{ID: 1, Name: "Dairy", Code: "DRY"}}, items)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sections/9999", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "hive section not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Get(context.Background(), 9999)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "hive section not found")
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.UpdateHiveSectionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "A", req.Name)

		w.Header().Set("Location", "/api/sections/42")
		writeJSON(t, w, http.StatusCreated, models.HiveSection{ID: 42, Name: req.Name})
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).Create(context.Background(), models.UpdateHiveSectionRequest{Name: "A"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestCreate_MissingLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.HiveSection{ID: 42, Name: "A"})
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).Create(context.Background(), models.UpdateHiveSectionRequest{Name: "A"})

	assert.ErrorIs(t, err, ErrNoLocation)
	assert.Equal(t, int64(42), created.ID)
}

// ── Update / SetStatus / Delete ─────────────────────────────────────────────

func TestMutations_Paths(t *testing.T) {
	tests := []struct {
		name       string
		call       func(a SectionsAdapter) error
		wantMethod string
		wantPath   string
	}{
		{
			name:       "update",
			call:       func(a SectionsAdapter) error { return a.Update(context.Background(), 5, models.UpdateHiveSectionRequest{Name: "B"}) },
			wantMethod: http.MethodPut,
			wantPath:   "/api/sections/5",
		},
		{
			name:       "set status",
			call:       func(a SectionsAdapter) error { return a.SetStatus(context.Background(), 5, true) },
			wantMethod: http.MethodPut,
			wantPath:   "/api/sections/5/status/true",
		},
		{
			name:       "delete",
			call:       func(a SectionsAdapter) error { return a.Delete(context.Background(), 5) },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/sections/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			assert.NoError(t, tt.call(newTestAdapter(t, srv.URL)))
		})
	}
}

func TestMutations_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{status: http.StatusBadRequest, body: `{"error":"invalid request: name is required"}`, wantErr: ErrBadRequest, wantMsg: "name is required"},
		{status: http.StatusNotFound, body: `{"error":"not found"}`, wantErr: ErrNotFound, wantMsg: "not found"},
		{status: http.StatusConflict, body: `{"error":"hive section must be marked as deleted before removal"}`, wantErr: ErrConflict, wantMsg: "marked as deleted"},
		{status: http.StatusInternalServerError, body: "", wantErr: ErrInternalServerError, wantMsg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Delete(context.Background(), 5)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).List(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 503: maintenance", err.Error())
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

func TestRequest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
