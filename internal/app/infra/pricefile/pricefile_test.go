package pricefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/domains/entity/etprice"
)

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "prices.json")
	table := etprice.NewTable("2026-01-05 09:12:00")
	table.Set(etcart.ProductOnionMid, 5, 9900)

	require.NoError(t, Save(path, table))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"onion_mid"`)
	assert.Contains(t, string(raw), `"5": 9900`)

	loaded, err := Load(path)
	require.NoError(t, err)
	price, ok := loaded.Lookup(etcart.ProductOnionMid, 5)
	assert.True(t, ok)
	assert.Equal(t, 9900, price)
	assert.Equal(t, "2026-01-05 09:12:00", loaded.UpdatedAt)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("window.X = {}"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
