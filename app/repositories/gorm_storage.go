package repositories

import (
	"context"
	"net/http"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage keeps every visitor's entries in the storage_entries table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Open(_ http.ResponseWriter, r *http.Request, visitorID string) (KeyValueStore, error) {
	return g.Scope(r.Context(), visitorID), nil
}

func (g *GormStorage) Scope(ctx context.Context, namespace string) KeyValueStore {
	return &gormScope{db: g.db, ctx: ctx, namespace: namespace}
}

type gormScope struct {
	db        *gorm.DB
	ctx       context.Context
	namespace string
}

func (s *gormScope) GetItem(key string) (string, bool, error) {
	var entry models.StorageEntry
	err := s.db.WithContext(s.ctx).
		Where("namespace = ? AND entry_key = ?", s.namespace, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read storage entry %s/%s", s.namespace, key)
	}
	return entry.Value, true, nil
}

func (s *gormScope) SetItem(key, value string) error {
	entry := models.StorageEntry{Namespace: s.namespace, EntryKey: key, Value: value}
	err := s.db.WithContext(s.ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	return errors.Wrapf(err, "write storage entry %s/%s", s.namespace, key)
}

func (s *gormScope) RemoveItem(key string) error {
	err := s.db.WithContext(s.ctx).
		Where("namespace = ? AND entry_key = ?", s.namespace, key).
		Delete(&models.StorageEntry{}).Error
	return errors.Wrapf(err, "delete storage entry %s/%s", s.namespace, key)
}
