package models

import "github.com/google/uuid"

// DictionaryUpdate carries the mutable dictionary fields of a partial
// update. Nil pointers leave the stored value untouched.
type DictionaryUpdate struct {
	Type        *string
	Name        *string
	Description *string
	IsEnable    *bool
	Sort        *int
	ParentID    *uuid.UUID
}

// DictionaryItemUpdate carries the mutable item fields of a partial update.
type DictionaryItemUpdate struct {
	DictionaryID *uuid.UUID
	Name         *string
	Value        *int
	Description  *string
	IsEnable     *bool
	Sort         *int
}
