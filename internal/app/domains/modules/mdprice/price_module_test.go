package mdprice

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/domains/entity/etprice"
	"singsing/storefront/internal/app/infra/pricefile"
	"singsing/storefront/internal/app/pkg/errorx"
)

func TestReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prices.json")

	m := NewPriceModule(path, nil)
	require.NoError(t, m.Reload(ctx), "missing file is not an error")
	assert.Nil(t, m.Table())
	_, err := m.RequireTable()
	assert.ErrorIs(t, err, errorx.ErrPriceTableMissing)

	table := etprice.NewTable("2026-01-05")
	table.Set(etcart.ProductKohlrabi, 3, 7500)
	require.NoError(t, pricefile.Save(path, table))

	require.NoError(t, m.Reload(ctx))
	price, ok := m.Table().Lookup(etcart.ProductKohlrabi, 3)
	assert.True(t, ok)
	assert.Equal(t, 7500, price)
}

func TestReloadKeepsTableOnBadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prices.json")

	m := NewPriceModule(path, nil)
	table := etprice.NewTable("v1")
	m.SetTable(table)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	assert.Error(t, m.Reload(ctx))
	assert.Same(t, table, m.Table())
}
