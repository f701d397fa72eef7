package mysql

import "time"

// KVEntry one stored key
type KVEntry struct {
	Key       string    `gorm:"column:storage_key;primaryKey;type:varchar(191)"`
	Value     string    `gorm:"column:storage_value;type:longtext;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName table name
func (KVEntry) TableName() string {
	return "kv_entries"
}
