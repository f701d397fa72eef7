package etcart

import (
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidCartID = errors.New("cart ID cannot be empty")

// Item is one cart row as persisted: {"productId","name","pack","qty"}.
type Item struct {
	ProductID ProductID `json:"productId"`
	Name      string    `json:"name"`
	Pack      int       `json:"pack"`
	Qty       int       `json:"qty"`
}

// Key identifies the row; a cart holds at most one row per key.
func (it Item) Key() string {
	return it.ProductID + ":" + strconv.Itoa(it.Pack)
}

// RawItem is a cart row before normalization, as found in storage or
// submitted by a client.
type RawItem struct {
	ProductID Loose `json:"productId"`
	Name      Loose `json:"name"`
	Pack      Loose `json:"pack"`
	Qty       Loose `json:"qty"`
}

// Normalize converts the raw row into a canonical Item.
func (r RawItem) Normalize() Item {
	name := textOf(r.Name)
	pid := NormalizeProductID(textOf(r.ProductID), name)
	return Item{
		ProductID: pid,
		Name:      name,
		Pack:      PackOf(r.Pack, pid),
		Qty:       QtyOf(r.Qty),
	}
}

// NormalizeItem re-applies normalization to an already typed item.
func NormalizeItem(it Item) Item {
	pid := NormalizeProductID(it.ProductID, it.Name)
	return Item{
		ProductID: pid,
		Name:      it.Name,
		Pack:      NormalizePack(strconv.Itoa(it.Pack), pid),
		Qty:       PositiveQty(it.Qty),
	}
}

// ResolveKey normalizes a (product, pack) reference coming from a remove or
// update request. The product reference doubles as its own label.
func ResolveKey(productID string, pack Loose) (ProductID, int) {
	pid := NormalizeProductID(productID, productID)
	return pid, PackOf(pack, pid)
}

// NormalizeItems normalizes every row, drops rows without a product and merges
// rows sharing a key by summing quantities. The first row of a key keeps its
// position and name.
func NormalizeItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	index := make(map[string]int, len(items))
	for _, raw := range items {
		it := NormalizeItem(raw)
		if it.ProductID == "" {
			continue
		}
		if i, ok := index[it.Key()]; ok {
			out[i].Qty = addQty(out[i].Qty, it.Qty)
			continue
		}
		index[it.Key()] = len(out)
		out = append(out, it)
	}
	return out
}

// DecodeItems parses stored cart content. Anything that is not a JSON array
// decodes to an empty cart; malformed rows are repaired, not rejected.
func DecodeItems(data []byte) []Item {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return []Item{}
	}

	items := make([]Item, 0, len(elems))
	for _, elem := range elems {
		var raw RawItem
		if err := json.Unmarshal(elem, &raw); err != nil {
			raw = RawItem{}
		}
		items = append(items, raw.Normalize())
	}
	return NormalizeItems(items)
}

// EncodeItems renders the canonical stored form of items.
func EncodeItems(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

// Cart is the aggregate root of a shopper's cart.
type Cart struct {
	ID    string
	Items []Item
}

// NewCart creates a cart with normalized items.
func NewCart(id string, items []Item) (*Cart, error) {
	if id == "" {
		return nil, ErrInvalidCartID
	}
	return &Cart{ID: id, Items: NormalizeItems(items)}, nil
}

// Add merges it into the cart and returns the resulting row. A row whose
// product normalizes to nothing is dropped, as it would be on the next read,
// and Add reports false.
func (c *Cart) Add(it Item) (Item, bool) {
	it = NormalizeItem(it)
	if it.ProductID == "" {
		return Item{}, false
	}
	if i := c.indexOf(it.ProductID, it.Pack); i >= 0 {
		c.Items[i].Qty = addQty(c.Items[i].Qty, it.Qty)
		return c.Items[i], true
	}
	c.Items = append(c.Items, it)
	return it, true
}

// Remove deletes the row for (productID, pack). It reports whether a row was
// removed.
func (c *Cart) Remove(productID string, pack Loose) bool {
	pid, pk := ResolveKey(productID, pack)
	kept := c.Items[:0]
	removed := false
	for _, it := range c.Items {
		if it.ProductID == pid && it.Pack == pk {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	return removed
}

// SetQty sets the quantity of the row for (productID, pack). It reports
// whether the row exists.
func (c *Cart) SetQty(productID string, pack, qty Loose) bool {
	pid, pk := ResolveKey(productID, pack)
	i := c.indexOf(pid, pk)
	if i < 0 {
		return false
	}
	c.Items[i].Qty = QtyOf(qty)
	return true
}

// Count is the badge number: the sum of all quantities.
func (c *Cart) Count() int {
	total := 0
	for _, it := range c.Items {
		total += PositiveQty(it.Qty)
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) indexOf(pid ProductID, pack int) int {
	for i, it := range c.Items {
		if it.ProductID == pid && it.Pack == pack {
			return i
		}
	}
	return -1
}

// addQty sums quantities, saturating at MaxQty.
func addQty(a, b int) int {
	if a > MaxQty-b {
		return MaxQty
	}
	return PositiveQty(a + b)
}
