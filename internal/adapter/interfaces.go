// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the sections API.
//
// The primary abstraction is [SectionsAdapter], which hides the transport
// from callers. The package ships an HTTP/REST implementation built on resty
// ([NewHTTPSectionsAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/katla-sections/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SectionsAdapter talks to the /api/sections resource of a running server.
type SectionsAdapter interface {
	// List returns all sections ordered by id.
	List(ctx context.Context) ([]models.HiveSectionListItem, error)

	// Get returns the section with the given id.
	Get(ctx context.Context, id int64) (models.HiveSection, error)

	// Create stores a new section and returns it with the assigned id.
	Create(ctx context.Context, req models.UpdateHiveSectionRequest) (models.HiveSection, error)

	// Update replaces name, code and hive of an existing section.
	Update(ctx context.Context, id int64, req models.UpdateHiveSectionRequest) error

	// SetStatus sets or clears the soft-delete flag.
	SetStatus(ctx context.Context, id int64, deleted bool) error

	// Delete removes a soft-deleted section.
	Delete(ctx context.Context, id int64) error

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
