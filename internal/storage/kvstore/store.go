// Package kvstore provides the agent's durable local key-value storage,
// backed by a single-file sqlite database. It is the Go counterpart of the
// mobile app's UserDefaults: get/set/remove by fixed string keys.
package kvstore

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (record) TableName() string { return "kv" }

// Store is a sqlite-backed key-value store.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the store at path.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %q: %w", path, err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the value stored under key, or (nil, nil) when absent.
func (s *Store) Get(key string) ([]byte, error) {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return rec.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	rec := record{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("kvstore: set %q: %w", key, err)
	}
	return nil
}

// Remove deletes the value stored under key. Missing keys are not an error.
func (s *Store) Remove(key string) error {
	if err := s.db.Delete(&record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kvstore: remove %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("kvstore: close: %w", err)
	}
	return sqlDB.Close()
}
