package models

import (
	"time"

	"github.com/google/uuid"
)

// Dictionary is a key/value enumeration group. (type, name) is unique among
// live rows.
type Dictionary struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Type        string     `db:"type" json:"type"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	IsEnable    bool       `db:"is_enable" json:"isEnable"`
	Sort        int        `db:"sort" json:"sort"`
	ParentID    *uuid.UUID `db:"parent_id" json:"parentId,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt   *time.Time `db:"deleted_at" json:"-"`
}

// DictionaryItem is a single enumeration entry. Both (dictionaryId, name) and
// (dictionaryId, value) are unique among live rows.
type DictionaryItem struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	DictionaryID uuid.UUID  `db:"dictionary_id" json:"dictionaryId"`
	Name         string     `db:"name" json:"name"`
	Value        int        `db:"value" json:"value"`
	Description  *string    `db:"description" json:"description,omitempty"`
	IsEnable     bool       `db:"is_enable" json:"isEnable"`
	Sort         int        `db:"sort" json:"sort"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}
