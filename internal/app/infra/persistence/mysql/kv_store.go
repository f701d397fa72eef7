package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Open connects to MySQL with dsn.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// KVStore keeps keys in the kv_entries table.
type KVStore struct {
	db *gorm.DB
}

// NewKVStore wraps db.
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

// Migrate creates or updates the kv_entries table.
func (s *KVStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&KVEntry{})
}

// GetItem reads key; a missing row is not an error.
func (s *KVStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entries []KVEntry
	err := s.db.WithContext(ctx).
		Where("storage_key = ?", key).
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	if len(entries) == 0 {
		return "", false, nil
	}
	return entries[0].Value, true, nil
}

// SetItem upserts key.
func (s *KVStore) SetItem(ctx context.Context, key, value string) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"storage_value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key.
func (s *KVStore) RemoveItem(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("storage_key = ?", key).
		Delete(&KVEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *KVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
