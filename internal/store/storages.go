package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
)

// Storages groups the repositories the service layer depends on.
type Storages struct {
	HiveSectionRepository HiveSectionRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies migrations
// when cfg.Migrate is set and builds the repositories on top of the
// connection.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, logger)
	if err != nil {
		logger.Err(err).Str("func", "store.NewStorages").Msg("failed to connect to database")
		return nil, err
	}

	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			logger.Err(err).Str("func", "store.NewStorages").Msg("failed to apply migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		logger.Info().Str("func", "store.NewStorages").Str("dialect", string(db.dialect)).Msg("migrations applied")
	}

	return &Storages{
		HiveSectionRepository: NewHiveSectionRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
