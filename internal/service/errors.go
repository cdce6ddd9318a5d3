package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrHiveSectionNotFound     = errors.New("hive section not found")
	ErrHiveSectionCodeConflict = errors.New("hive section code is already in use")
	ErrHiveSectionNotDeleted   = errors.New("hive section must be marked as deleted before removal")
	ErrStoreHiveNotFound       = errors.New("store hive not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
