package etprice

import (
	"singsing/storefront/internal/app/domains/entity/etcart"
)

// Table maps product and pack size to a unit price in won. It is generated
// from the supply price sheet.
type Table struct {
	UpdatedAt string                           `json:"updatedAt"`
	Items     map[etcart.ProductID]map[int]int `json:"items"`
}

// NewTable creates an empty table stamped with updatedAt.
func NewTable(updatedAt string) *Table {
	return &Table{UpdatedAt: updatedAt, Items: make(map[etcart.ProductID]map[int]int)}
}

// Set records a price. Later rows for the same product and pack win.
func (t *Table) Set(productID etcart.ProductID, pack, price int) {
	if t.Items == nil {
		t.Items = make(map[etcart.ProductID]map[int]int)
	}
	if t.Items[productID] == nil {
		t.Items[productID] = make(map[int]int)
	}
	t.Items[productID][pack] = price
}

// Lookup returns the unit price for a product and pack.
func (t *Table) Lookup(productID etcart.ProductID, pack int) (int, bool) {
	if t == nil {
		return 0, false
	}
	price, ok := t.Items[productID][pack]
	return price, ok
}

// Line is one priced cart row.
type Line struct {
	Item      etcart.Item
	UnitPrice int
	Priced    bool
	LineTotal int
}

// Summary is a priced view of a cart.
type Summary struct {
	CartID         string
	Lines          []Line
	Count          int
	Total          int
	Unpriced       int // rows without a price; excluded from Total
	PriceUpdatedAt string
	DispatchText   string
}

// Summarize prices every row of cart. A nil table prices nothing.
func Summarize(cart *etcart.Cart, table *Table) *Summary {
	s := &Summary{
		CartID: cart.ID,
		Lines:  make([]Line, 0, len(cart.Items)),
		Count:  cart.Count(),
	}
	if table != nil {
		s.PriceUpdatedAt = table.UpdatedAt
	}
	for _, it := range cart.Items {
		line := Line{Item: it}
		if price, ok := table.Lookup(it.ProductID, it.Pack); ok {
			line.UnitPrice = price
			line.Priced = true
			line.LineTotal = price * it.Qty
			s.Total += line.LineTotal
		} else {
			s.Unpriced++
		}
		s.Lines = append(s.Lines, line)
	}
	return s
}
