package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/models"
)

type hiveSectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewHiveSectionRepository returns a [HiveSectionRepository] backed by db.
func NewHiveSectionRepository(db *DB, logger *logger.Logger) HiveSectionRepository {
	return &hiveSectionRepository{DB: db, logger: logger}
}

func (r *hiveSectionRepository) List(ctx context.Context) ([]models.HiveSectionListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHiveSectionsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*hiveSectionRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.HiveSectionListItem
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		items = make([]models.HiveSectionListItem, 0)
		for rows.Next() {
			var (
				item models.HiveSectionListItem
				code sql.NullString
			)
			if err = rows.Scan(&item.ID, &item.Name, &code, &item.IsDeleted); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			item.Code = code.String
			items = append(items, item)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*hiveSectionRepository.List").Msg("error listing hive sections")
		return nil, err
	}

	return items, nil
}

func (r *hiveSectionRepository) Get(ctx context.Context, id int64) (models.HiveSection, error) {
	query, args, err := buildGetHiveSectionQuery(r.builder, id)
	if err != nil {
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "*hiveSectionRepository.Get", query, args)
}

func (r *hiveSectionRepository) GetByCode(ctx context.Context, code string) (models.HiveSection, error) {
	query, args, err := buildGetHiveSectionByCodeQuery(r.builder, code)
	if err != nil {
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "*hiveSectionRepository.GetByCode", query, args)
}

func (r *hiveSectionRepository) getOne(ctx context.Context, funcName, query string, args []any) (models.HiveSection, error) {
	var section models.HiveSection
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var err error
		section, err = scanHiveSection(r.QueryRowContext(ctx, query, args...))
		return err
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HiveSection{}, ErrHiveSectionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error getting hive section")
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return section, nil
}

// Create inserts section and returns the stored row. Inserts are not
// retried: a lost response could hide an already committed row.
func (r *hiveSectionRepository) Create(ctx context.Context, section models.HiveSection) (models.HiveSection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertHiveSectionQuery(r.builder, section)
	if err != nil {
		log.Err(err).Str("func", "*hiveSectionRepository.Create").Msg("error building query")
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanHiveSection(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if constraintErr := r.errorClassificator.Constraint(err); constraintErr != nil {
			return models.HiveSection{}, fmt.Errorf("%w: %w", constraintErr, err)
		}
		log.Err(err).Str("func", "*hiveSectionRepository.Create").Msg("error inserting hive section")
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *hiveSectionRepository) Update(ctx context.Context, section models.HiveSection) (models.HiveSection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateHiveSectionQuery(r.builder, section)
	if err != nil {
		log.Err(err).Str("func", "*hiveSectionRepository.Update").Msg("error building query")
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.HiveSection
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanHiveSection(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HiveSection{}, ErrHiveSectionNotFound
		}
		if constraintErr := r.errorClassificator.Constraint(err); constraintErr != nil {
			return models.HiveSection{}, fmt.Errorf("%w: %w", constraintErr, err)
		}
		log.Err(err).Str("func", "*hiveSectionRepository.Update").Msg("error updating hive section")
		return models.HiveSection{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *hiveSectionRepository) SetDeleted(ctx context.Context, id int64, deleted bool, updatedAt time.Time) error {
	query, args, err := buildSetHiveSectionDeletedQuery(r.builder, id, deleted, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*hiveSectionRepository.SetDeleted", query, args)
}

func (r *hiveSectionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteHiveSectionQuery(r.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*hiveSectionRepository.Delete", query, args)
}

// execAffectingOne runs a statement addressed by primary key and reports
// [ErrHiveSectionNotFound] when no row matched.
func (r *hiveSectionRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	var affected int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrHiveSectionNotFound
	}

	return nil
}
