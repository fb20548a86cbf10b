// Package model defines database models for persistence layer.
package model

import (
	"time"
)

// KeyValueModel represents the key_values table backing the SQL goal store.
type KeyValueModel struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the KeyValueModel.
func (KeyValueModel) TableName() string {
	return "key_values"
}
