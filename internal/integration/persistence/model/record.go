// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	Namespace string    `gorm:"type:varchar(64);primaryKey"`
	Key       string    `gorm:"column:record_key;type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToRecord converts a RecordModel to a store record.
func (m *RecordModel) ToRecord() adapter.Record {
	return adapter.Record{
		Key:       m.Key,
		Value:     []byte(m.Value),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// RecordModelFromRecord creates a RecordModel from a store record.
func RecordModelFromRecord(namespace string, record adapter.Record) *RecordModel {
	return &RecordModel{
		Namespace: namespace,
		Key:       record.Key,
		Value:     string(record.Value),
		UpdatedAt: record.UpdatedAt.UTC(),
	}
}
