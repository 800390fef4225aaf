// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/model"
)

// gormRecordStore implements the adapter.RecordStore interface on a SQL database.
type gormRecordStore struct {
	db *gorm.DB
}

// NewGormRecordStore creates a record store backed by the records table.
func NewGormRecordStore(db *gorm.DB) adapter.RecordStore {
	return &gormRecordStore{
		db: db,
	}
}

// Get retrieves a record by namespace and key.
func (s *gormRecordStore) Get(ctx context.Context, namespace, key string) (adapter.Record, bool, error) {
	var recordModel model.RecordModel
	result := s.db.WithContext(ctx).
		Where("namespace = ? AND record_key = ?", namespace, key).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return adapter.Record{}, false, nil
		}
		return adapter.Record{}, false, result.Error
	}
	return recordModel.ToRecord(), true, nil
}

// Put inserts or replaces a record.
func (s *gormRecordStore) Put(ctx context.Context, namespace string, record adapter.Record) error {
	recordModel := model.RecordModelFromRecord(namespace, record)
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(recordModel)
	return result.Error
}

// Delete removes a record.
func (s *gormRecordStore) Delete(ctx context.Context, namespace, key string) error {
	result := s.db.WithContext(ctx).
		Delete(&model.RecordModel{}, "namespace = ? AND record_key = ?", namespace, key)
	return result.Error
}

// List returns the namespace's records whose key starts with prefix.
func (s *gormRecordStore) List(ctx context.Context, namespace, prefix string) ([]adapter.Record, error) {
	var models []model.RecordModel
	query := s.db.WithContext(ctx).Where("namespace = ?", namespace)
	if prefix != "" {
		query = query.Where("record_key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}
	result := query.Order("record_key ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]adapter.Record, len(models))
	for i := range models {
		records[i] = models[i].ToRecord()
	}
	return records, nil
}

// Clear removes every record of the namespace.
func (s *gormRecordStore) Clear(ctx context.Context, namespace string) error {
	result := s.db.WithContext(ctx).Delete(&model.RecordModel{}, "namespace = ?", namespace)
	return result.Error
}

// Namespaces returns every namespace that holds records.
func (s *gormRecordStore) Namespaces(ctx context.Context) ([]string, error) {
	var namespaces []string
	result := s.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Distinct("namespace").
		Order("namespace ASC").
		Pluck("namespace", &namespaces)
	if result.Error != nil {
		return nil, result.Error
	}
	return namespaces, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
