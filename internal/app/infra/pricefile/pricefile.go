// Package pricefile reads and writes the JSON price table produced from the
// supply price sheet.
package pricefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"singsing/storefront/internal/app/domains/entity/etprice"
)

// Load reads the price table at path.
func Load(path string) (*etprice.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table failed: %w", err)
	}
	var table etprice.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode price table %s failed: %w", path, err)
	}
	return &table, nil
}

// Save writes table to path, indented for humans diffing it.
func Save(path string, table *etprice.Table) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode price table failed: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s failed: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write price table failed: %w", err)
	}
	return nil
}
