package mdprice

import (
	"context"
	"errors"
	"os"
	"sync"

	"singsing/storefront/internal/app/domains/entity/etprice"
	"singsing/storefront/internal/app/infra/pricefile"
	"singsing/storefront/internal/app/pkg/errorx"
	"singsing/storefront/internal/app/pkg/logger"
)

// PriceModule holds the price table the summaries are priced with
type PriceModule struct {
	path   string
	logger logger.Logger

	mu    sync.RWMutex
	table *etprice.Table
}

// NewPriceModule creates a PriceModule reading from path. Call Reload to
// load the table.
func NewPriceModule(path string, log logger.Logger) *PriceModule {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &PriceModule{path: path, logger: log}
}

// Reload re-reads the price file. A missing file leaves the module without a
// table, which prices nothing; any other failure keeps the previous table.
func (m *PriceModule) Reload(ctx context.Context) error {
	if m.path == "" {
		m.setTable(nil)
		return nil
	}
	table, err := pricefile.Load(m.path)
	if errors.Is(err, os.ErrNotExist) {
		m.logger.Warnf(ctx, "price file %s not found, summaries will be unpriced", m.path)
		m.setTable(nil)
		return nil
	}
	if err != nil {
		return err
	}
	m.setTable(table)
	m.logger.Infof(ctx, "price table loaded: updated_at=%s, products=%d", table.UpdatedAt, len(table.Items))
	return nil
}

// Table returns the current table, nil when none is loaded.
func (m *PriceModule) Table() *etprice.Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table
}

// RequireTable is Table for callers that cannot work without prices.
func (m *PriceModule) RequireTable() (*etprice.Table, error) {
	table := m.Table()
	if table == nil {
		return nil, errorx.ErrPriceTableMissing
	}
	return table, nil
}

// SetTable replaces the table in memory.
func (m *PriceModule) SetTable(table *etprice.Table) {
	m.setTable(table)
}

func (m *PriceModule) setTable(table *etprice.Table) {
	m.mu.Lock()
	m.table = table
	m.mu.Unlock()
}
