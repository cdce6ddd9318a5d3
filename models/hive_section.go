// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HiveSection is a section of a store hive as exposed by the sections API.
type HiveSection struct {
	// ID is assigned by the storage on creation and is always positive for
	// an existing section.
	ID int64 `json:"id"`

	// Name is the human-readable section title.
	Name string `json:"name"`

	// Code is an optional short code, unique across all sections when set.
	Code string `json:"code"`

	// IsDeleted marks the section as soft-deleted. Only soft-deleted sections
	// can be removed for good.
	IsDeleted bool `json:"is_deleted"`

	// StoreHiveID references the hive the section belongs to. Zero means the
	// section is not attached to any hive.
	StoreHiveID int64 `json:"store_hive_id,omitempty"`

	// LastUpdated is the time of the last change of the section.
	LastUpdated time.Time `json:"last_updated"`
}

// HiveSectionListItem is the reduced projection of [HiveSection] returned by
// the list endpoint.
type HiveSectionListItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	IsDeleted bool   `json:"is_deleted"`
}

// ToListItem projects the section onto a [HiveSectionListItem].
func (s HiveSection) ToListItem() HiveSectionListItem {
	return HiveSectionListItem{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		IsDeleted: s.IsDeleted,
	}
}
