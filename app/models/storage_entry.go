package models

import "time"

// StorageEntry is one key of a visitor's durable key/value store.
type StorageEntry struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	EntryKey  string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
