package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/katla-sections/internal/service"
	"github.com/MKhiriev/katla-sections/internal/store"
	"github.com/MKhiriev/katla-sections/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "route constraint", err: fmt.Errorf("%w: id", ErrRouteNotMatched), want: http.StatusNotFound},
		{name: "bad json", err: fmt.Errorf("%w: EOF", ErrInvalidJSON), want: http.StatusBadRequest},
		{name: "validation", err: fmt.Errorf("%w: name is required", validators.ErrInvalidRequest), want: http.StatusBadRequest},
		{name: "invalid id", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "unknown store hive", err: service.ErrStoreHiveNotFound, want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: %w", service.ErrHiveSectionNotFound, store.ErrHiveSectionNotFound), want: http.StatusNotFound},
		{name: "code conflict", err: service.ErrHiveSectionCodeConflict, want: http.StatusConflict},
		{name: "unique index", err: store.ErrHiveSectionCodeExists, want: http.StatusConflict},
		{name: "not soft-deleted", err: service.ErrHiveSectionNotDeleted, want: http.StatusConflict},
		{name: "query failure", err: fmt.Errorf("wrap: %w", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "not found", publicMessage(fmt.Errorf("%w: id \"x\"", ErrRouteNotMatched)))
	assert.Equal(t, service.ErrHiveSectionNotFound.Error(),
		publicMessage(fmt.Errorf("%w: %w", service.ErrHiveSectionNotFound, store.ErrHiveSectionNotFound)))
	assert.Equal(t, ErrInvalidJSON.Error(), publicMessage(fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON)))
	assert.Equal(t, "invalid request: name is required",
		publicMessage(fmt.Errorf("%w: name is required", validators.ErrInvalidRequest)))
}
