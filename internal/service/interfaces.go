package service

import (
	"context"

	"github.com/MKhiriev/katla-sections/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// HiveSectionService holds the business rules of hive sections.
type HiveSectionService interface {
	GetHiveSections(ctx context.Context) ([]models.HiveSectionListItem, error)
	GetHiveSection(ctx context.Context, id int64) (models.HiveSection, error)
	CreateHiveSection(ctx context.Context, req models.UpdateHiveSectionRequest) (models.HiveSection, error)
	UpdateHiveSection(ctx context.Context, id int64, req models.UpdateHiveSectionRequest) (models.HiveSection, error)
	DeleteHiveSection(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, deleted bool) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HiveSectionServiceWrapper defines middleware composition for HiveSectionService.
// Implementations wrap an existing HiveSectionService to add behavior such as
// validating.
type HiveSectionServiceWrapper interface {
	Wrap(HiveSectionService) HiveSectionService // returns a decorated HiveSectionService applying additional behavior
}
