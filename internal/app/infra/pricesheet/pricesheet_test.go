package pricesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"singsing/storefront/internal/app/domains/entity/etcart"
)

func setRow(t *testing.T, f *excelize.File, sheet, startCell string, values ...interface{}) {
	t.Helper()
	require.NoError(t, f.SetSheetRow(sheet, startCell, &values))
}

// newWorkbook builds a notice sheet with free text above a table that sits
// to the right, as the office keeps it.
func newWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	setRow(t, f, "Sheet1", "A1", HeaderName, HeaderPack, HeaderPrice)
	setRow(t, f, "Sheet1", "A2", "양파", "5kg", "1")

	_, err := f.NewSheet("공지사항")
	require.NoError(t, err)
	setRow(t, f, "공지사항", "A1", "싱싱농산물 공급 단가 안내")
	setRow(t, f, "공지사항", "A2", "단가는 부가세 포함")
	setRow(t, f, "공지사항", "E4", HeaderName, HeaderPack, HeaderPrice)
	setRow(t, f, "공지사항", "E5", "양파", "5kg", "9,900")
	setRow(t, f, "공지사항", "E6", "양배추", "4KG", 15000.5)
	setRow(t, f, "공지사항", "E7", "", "3kg", "")
	setRow(t, f, "공지사항", "E8", "표고버섯", "1kg", "20000")
	setRow(t, f, "공지사항", "E9", "콜라비", "", "7000")
	setRow(t, f, "공지사항", "E11", "국내산 흙당근", "3kg", "12900")
	return f
}

func TestReadSupplyTable(t *testing.T) {
	f := newWorkbook(t)

	table, err := ReadSupplyTable(f)
	require.NoError(t, err)
	assert.Equal(t, "공지사항", table.Sheet)
	require.Len(t, table.Rows, 4, "stops at the blank row, skips the nameless one")
	assert.Equal(t, Row{Name: "양파", Pack: "5kg", Price: "9,900"}, table.Rows[0])
	assert.Equal(t, "콜라비", table.Rows[3].Name)
}

func TestReadSupplyTablePrefersSupplySheet(t *testing.T) {
	f := newWorkbook(t)
	_, err := f.NewSheet("공급표")
	require.NoError(t, err)
	setRow(t, f, "공급표", "B2", HeaderPrice, HeaderName, HeaderPack)
	setRow(t, f, "공급표", "B3", "4200", "꿀고구마", "3kg")

	table, err := ReadSupplyTable(f)
	require.NoError(t, err)
	assert.Equal(t, "공급표", table.Sheet)
	assert.Equal(t, []Row{{Name: "꿀고구마", Pack: "3kg", Price: "4200"}}, table.Rows)
}

func TestReadSupplyTableMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	setRow(t, f, "Sheet1", "A1", "품목", "가격")

	_, err := ReadSupplyTable(f)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SINGSING_SUPPLY_PRICE_LIST.xlsx")
	require.NoError(t, newWorkbook(t).SaveAs(path))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 4)

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestBuildTable(t *testing.T) {
	table, err := ReadSupplyTable(newWorkbook(t))
	require.NoError(t, err)

	res := BuildTable(table.Rows, CatalogIndex(), "2026-03-01 18:00:00")

	price, ok := res.Table.Lookup(etcart.ProductOnionMid, 5)
	assert.True(t, ok)
	assert.Equal(t, 9900, price)
	price, ok = res.Table.Lookup(etcart.ProductCabbage38, 4)
	assert.True(t, ok)
	assert.Equal(t, 15000, price, "half rounds to even")
	assert.Equal(t, []string{"표고버섯"}, res.Skipped)
	assert.Equal(t, 1, res.Invalid)
	assert.Equal(t, "2026-03-01 18:00:00", res.Table.UpdatedAt)
}

func TestParse(t *testing.T) {
	pack, ok := ParsePack(" 2 KG 박스")
	assert.True(t, ok)
	assert.Equal(t, 2, pack)
	_, ok = ParsePack("kg")
	assert.False(t, ok)

	price, ok := ParsePrice("3,840원")
	assert.True(t, ok)
	assert.Equal(t, 3840, price)
	price, ok = ParsePrice("12900.6")
	assert.True(t, ok)
	assert.Equal(t, 12901, price)
	_, ok = ParsePrice("문의")
	assert.False(t, ok)
}

func TestLoadNameIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	body := `[{"id":"onion_mid","name":"양파 중"},{"id":"x"},{"name":"y"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	idx, err := LoadNameIndex(path)
	require.NoError(t, err)
	assert.Equal(t, NameIndex{"양파 중": "onion_mid"}, idx)
}
