// Package pricesheet reads the supply price workbook the office maintains
// and turns its table into a price table.
package pricesheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column headers of the supply table.
const (
	HeaderName  = "품목"
	HeaderPack  = "포장단위"
	HeaderPrice = "최종단가(원)"
)

// Preferred sheets, tried before the rest in workbook order.
var preferredSheets = []string{"공급표", "공지사항"}

const headerScanRows = 200

var ErrTableNotFound = errors.New("supply table not found")

// Row is one table row as written in the sheet.
type Row struct {
	Name  string
	Pack  string
	Price string
}

// Table is the supply table found in a workbook.
type Table struct {
	Sheet string
	Rows  []Row
}

// ReadSupplyTable locates the first sheet holding the supply table and reads
// it down to the first fully blank row. Rows without a name are skipped.
func ReadSupplyTable(f *excelize.File) (*Table, error) {
	sheets := candidateSheets(f.GetSheetList())
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		headerRow, cols, ok := findHeader(rows)
		if !ok {
			continue
		}

		table := &Table{Sheet: sheet}
		for _, cells := range rows[headerRow+1:] {
			row := Row{
				Name:  strings.TrimSpace(cell(cells, cols[0])),
				Pack:  strings.TrimSpace(cell(cells, cols[1])),
				Price: strings.TrimSpace(cell(cells, cols[2])),
			}
			if row.Name == "" && row.Pack == "" && row.Price == "" {
				break
			}
			if row.Name == "" {
				continue
			}
			table.Rows = append(table.Rows, row)
		}
		return table, nil
	}
	return nil, fmt.Errorf("%w (sheets: %s)", ErrTableNotFound, strings.Join(sheets, ", "))
}

// ReadFile opens the workbook at path and reads its supply table.
func ReadFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook failed: %w", err)
	}
	defer f.Close()
	return ReadSupplyTable(f)
}

func candidateSheets(sheets []string) []string {
	out := make([]string, 0, len(sheets))
	seen := make(map[string]bool, len(sheets))
	for _, preferred := range preferredSheets {
		for _, s := range sheets {
			if s == preferred && !seen[s] {
				out = append(out, s)
				seen[s] = true
			}
		}
	}
	for _, s := range sheets {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}

// findHeader scans the top rows for one holding all three headers and
// returns its index with the name, pack and price columns.
func findHeader(rows [][]string) (int, [3]int, bool) {
	labels := [3]string{HeaderName, HeaderPack, HeaderPrice}
	limit := min(len(rows), headerScanRows)
	for r := 0; r < limit; r++ {
		var cols [3]int
		found := 0
		for i, label := range labels {
			cols[i] = -1
			for c, v := range rows[r] {
				if strings.TrimSpace(v) == label {
					cols[i] = c
					found++
					break
				}
			}
		}
		if found == len(labels) {
			return r, cols, true
		}
	}
	return 0, [3]int{}, false
}

// cell tolerates the short rows excelize returns for trailing blanks.
func cell(cells []string, col int) string {
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}
