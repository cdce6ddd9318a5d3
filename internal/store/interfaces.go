package store

import (
	"context"
	"time"

	"github.com/MKhiriev/katla-sections/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HiveSectionRepository persists hive sections.
//
// Methods return [ErrHiveSectionNotFound] when the addressed section does not
// exist, [ErrHiveSectionCodeExists] when a write would duplicate a section
// code and [ErrStoreHiveNotFound] when a write references an unknown hive.
type HiveSectionRepository interface {
	List(ctx context.Context) ([]models.HiveSectionListItem, error)
	Get(ctx context.Context, id int64) (models.HiveSection, error)
	GetByCode(ctx context.Context, code string) (models.HiveSection, error)
	Create(ctx context.Context, section models.HiveSection) (models.HiveSection, error)
	Update(ctx context.Context, section models.HiveSection) (models.HiveSection, error)
	SetDeleted(ctx context.Context, id int64, deleted bool, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator inspects driver errors of a particular database.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// Constraint translates a constraint violation into one of the
	// package sentinel errors. It returns nil for any other error.
	Constraint(err error) error
}
