package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/katla-sections/models"
)

const hiveSectionsTable = "hive_sections"

var (
	hiveSectionColumns     = []string{"id", "name", "code", "is_deleted", "store_hive_id", "last_updated"}
	hiveSectionListColumns = []string{"id", "name", "code", "is_deleted"}

	returningHiveSection = "RETURNING id, name, code, is_deleted, store_hive_id, last_updated"
)

func buildListHiveSectionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(hiveSectionListColumns...).
		From(hiveSectionsTable).
		OrderBy("id").
		ToSql()
}

func buildGetHiveSectionQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(hiveSectionColumns...).
		From(hiveSectionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetHiveSectionByCodeQuery(b sq.StatementBuilderType, code string) (string, []any, error) {
	return b.Select(hiveSectionColumns...).
		From(hiveSectionsTable).
		Where(sq.Eq{"code": code}).
		ToSql()
}

func buildInsertHiveSectionQuery(b sq.StatementBuilderType, s models.HiveSection) (string, []any, error) {
	return b.Insert(hiveSectionsTable).
		Columns("name", "code", "is_deleted", "store_hive_id", "last_updated").
		Values(s.Name, nullString(s.Code), s.IsDeleted, nullInt64(s.StoreHiveID), s.LastUpdated).
		Suffix(returningHiveSection).
		ToSql()
}

func buildUpdateHiveSectionQuery(b sq.StatementBuilderType, s models.HiveSection) (string, []any, error) {
	return b.Update(hiveSectionsTable).
		Set("name", s.Name).
		Set("code", nullString(s.Code)).
		Set("store_hive_id", nullInt64(s.StoreHiveID)).
		Set("last_updated", s.LastUpdated).
		Where(sq.Eq{"id": s.ID}).
		Suffix(returningHiveSection).
		ToSql()
}

func buildSetHiveSectionDeletedQuery(b sq.StatementBuilderType, id int64, deleted bool, updatedAt time.Time) (string, []any, error) {
	return b.Update(hiveSectionsTable).
		Set("is_deleted", deleted).
		Set("last_updated", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteHiveSectionQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(hiveSectionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanHiveSection reads a row selected with hiveSectionColumns.
func scanHiveSection(row rowScanner) (models.HiveSection, error) {
	var (
		section     models.HiveSection
		code        sql.NullString
		storeHiveID sql.NullInt64
	)

	err := row.Scan(&section.ID, &section.Name, &code, &section.IsDeleted, &storeHiveID, &section.LastUpdated)
	if err != nil {
		return models.HiveSection{}, err
	}

	section.Code = code.String
	section.StoreHiveID = storeHiveID.Int64

	return section, nil
}

// nullString stores empty codes as NULL so the unique index ignores them.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt64(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}
