package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/store"
	"github.com/MKhiriev/katla-sections/models"
)

type hiveSectionService struct {
	repository store.HiveSectionRepository
	now        func() time.Time

	logger *logger.Logger
}

func NewHiveSectionService(repository store.HiveSectionRepository, logger *logger.Logger) HiveSectionService {
	return &hiveSectionService{
		repository: repository,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// GetHiveSections returns all sections ordered by id. The result is never nil.
func (s *hiveSectionService) GetHiveSections(ctx context.Context) ([]models.HiveSectionListItem, error) {
	items, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing hive sections: %w", err)
	}

	if items == nil {
		items = []models.HiveSectionListItem{}
	}

	return items, nil
}

func (s *hiveSectionService) GetHiveSection(ctx context.Context, id int64) (models.HiveSection, error) {
	section, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.HiveSection{}, fromStoreError(err)
	}

	return section, nil
}

func (s *hiveSectionService) CreateHiveSection(ctx context.Context, req models.UpdateHiveSectionRequest) (models.HiveSection, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureCodeIsFree(ctx, req.Code, 0); err != nil {
		log.Debug().Err(err).Str("func", "*hiveSectionService.CreateHiveSection").Str("code", req.Code).Msg("code check failed")
		return models.HiveSection{}, err
	}

	created, err := s.repository.Create(ctx, models.HiveSection{
		Name:        req.Name,
		Code:        req.Code,
		StoreHiveID: req.StoreHiveID,
		LastUpdated: s.now(),
	})
	if err != nil {
		return models.HiveSection{}, fromStoreError(err)
	}

	log.Info().Str("func", "*hiveSectionService.CreateHiveSection").Int64("id", created.ID).Msg("hive section created")
	return created, nil
}

func (s *hiveSectionService) UpdateHiveSection(ctx context.Context, id int64, req models.UpdateHiveSectionRequest) (models.HiveSection, error) {
	section, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.HiveSection{}, fromStoreError(err)
	}

	if err = s.ensureCodeIsFree(ctx, req.Code, id); err != nil {
		return models.HiveSection{}, err
	}

	section.Name = req.Name
	section.Code = req.Code
	section.StoreHiveID = req.StoreHiveID
	section.LastUpdated = s.now()

	updated, err := s.repository.Update(ctx, section)
	if err != nil {
		return models.HiveSection{}, fromStoreError(err)
	}

	return updated, nil
}

// DeleteHiveSection removes a section that was soft-deleted beforehand.
func (s *hiveSectionService) DeleteHiveSection(ctx context.Context, id int64) error {
	section, err := s.repository.Get(ctx, id)
	if err != nil {
		return fromStoreError(err)
	}

	if !section.IsDeleted {
		return ErrHiveSectionNotDeleted
	}

	if err = s.repository.Delete(ctx, id); err != nil {
		return fromStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*hiveSectionService.DeleteHiveSection").Int64("id", id).Msg("hive section deleted")
	return nil
}

// SetStatus sets the soft-delete flag. Setting the current value again is a
// no-op and keeps last_updated untouched.
func (s *hiveSectionService) SetStatus(ctx context.Context, id int64, deleted bool) error {
	section, err := s.repository.Get(ctx, id)
	if err != nil {
		return fromStoreError(err)
	}

	if section.IsDeleted == deleted {
		return nil
	}

	if err = s.repository.SetDeleted(ctx, id, deleted, s.now()); err != nil {
		return fromStoreError(err)
	}

	return nil
}

// ensureCodeIsFree fails when another section than ownerID uses code.
// Empty codes never conflict.
func (s *hiveSectionService) ensureCodeIsFree(ctx context.Context, code string, ownerID int64) error {
	if code == "" {
		return nil
	}

	other, err := s.repository.GetByCode(ctx, code)
	switch {
	case errors.Is(err, store.ErrHiveSectionNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("error checking hive section code: %w", err)
	case other.ID != ownerID:
		return ErrHiveSectionCodeConflict
	}

	return nil
}

// fromStoreError translates repository sentinels into service errors.
func fromStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrHiveSectionNotFound):
		return fmt.Errorf("%w: %w", ErrHiveSectionNotFound, err)
	case errors.Is(err, store.ErrHiveSectionCodeExists):
		return fmt.Errorf("%w: %w", ErrHiveSectionCodeConflict, err)
	case errors.Is(err, store.ErrStoreHiveNotFound):
		return fmt.Errorf("%w: %w", ErrStoreHiveNotFound, err)
	}

	return err
}
