package pricesheet

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/domains/entity/etprice"
)

var (
	firstInt   = regexp.MustCompile(`\d+`)
	notDecimal = regexp.MustCompile(`[^0-9.]`)
)

// ParsePack reads the first integer of a pack cell ("5kg", "2 KG 박스").
func ParsePack(s string) (int, bool) {
	m := firstInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParsePrice reads a price cell such as "3,840" or "12900.5", rounding half
// to even.
func ParsePrice(s string) (int, bool) {
	s = notDecimal.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(math.RoundToEven(f)), true
}

// NameIndex maps a display name in the sheet to a product id.
type NameIndex map[string]etcart.ProductID

// CatalogIndex indexes the built-in catalog by name.
func CatalogIndex() NameIndex {
	idx := make(NameIndex)
	for _, p := range etcart.Catalog() {
		idx[p.Name] = p.ID
	}
	return idx
}

// LoadNameIndex reads a products file: a JSON array of objects with id and
// name. Entries missing either are ignored.
func LoadNameIndex(path string) (NameIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products failed: %w", err)
	}
	var products []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode products %s failed: %w", path, err)
	}
	idx := make(NameIndex, len(products))
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			continue
		}
		idx[p.Name] = p.ID
	}
	return idx, nil
}

// Result is a built price table with the sheet names that matched no
// product, sorted and without repeats.
type Result struct {
	Table   *etprice.Table
	Skipped []string
	Invalid int // matched rows whose pack or price could not be read
}

// BuildTable prices every row whose name is in names. Later rows for the same
// product and pack win.
func BuildTable(rows []Row, names NameIndex, updatedAt string) *Result {
	res := &Result{Table: etprice.NewTable(updatedAt)}
	skipped := make(map[string]bool)
	for _, row := range rows {
		pid, ok := names[row.Name]
		if !ok {
			skipped[row.Name] = true
			continue
		}
		pack, okPack := ParsePack(row.Pack)
		price, okPrice := ParsePrice(row.Price)
		if !okPack || !okPrice {
			res.Invalid++
			continue
		}
		res.Table.Set(pid, pack, price)
	}
	for name := range skipped {
		res.Skipped = append(res.Skipped, name)
	}
	sort.Strings(res.Skipped)
	return res
}
