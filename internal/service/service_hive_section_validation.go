package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/katla-sections/internal/validators"
	"github.com/MKhiriev/katla-sections/models"
)

// HiveSectionValidationService checks ids and payloads before they reach the
// wrapped service.
type HiveSectionValidationService struct {
	inner     HiveSectionService
	validator validators.Validator
}

func NewHiveSectionValidationService() HiveSectionServiceWrapper {
	return &HiveSectionValidationService{
		validator: validators.NewHiveSectionValidator(),
	}
}

func (v *HiveSectionValidationService) GetHiveSections(ctx context.Context) ([]models.HiveSectionListItem, error) {
	return v.inner.GetHiveSections(ctx)
}

func (v *HiveSectionValidationService) GetHiveSection(ctx context.Context, id int64) (models.HiveSection, error) {
	if err := validateID(id); err != nil {
		return models.HiveSection{}, err
	}

	return v.inner.GetHiveSection(ctx, id)
}

func (v *HiveSectionValidationService) CreateHiveSection(ctx context.Context, req models.UpdateHiveSectionRequest) (models.HiveSection, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.HiveSection{}, fmt.Errorf("error during hive section validation before saving: %w", err)
	}

	return v.inner.CreateHiveSection(ctx, req)
}

func (v *HiveSectionValidationService) UpdateHiveSection(ctx context.Context, id int64, req models.UpdateHiveSectionRequest) (models.HiveSection, error) {
	if err := validateID(id); err != nil {
		return models.HiveSection{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.HiveSection{}, fmt.Errorf("error during hive section validation before updating: %w", err)
	}

	return v.inner.UpdateHiveSection(ctx, id, req)
}

func (v *HiveSectionValidationService) DeleteHiveSection(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	return v.inner.DeleteHiveSection(ctx, id)
}

func (v *HiveSectionValidationService) SetStatus(ctx context.Context, id int64, deleted bool) error {
	if err := validateID(id); err != nil {
		return err
	}

	return v.inner.SetStatus(ctx, id, deleted)
}

func (v *HiveSectionValidationService) Wrap(wrapped HiveSectionService) HiveSectionService {
	v.inner = wrapped
	return v
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: hive section id must be positive, got %d", ErrInvalidDataProvided, id)
	}
	return nil
}
