package response

import (
	"strconv"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/domains/entity/etnotice"
	"singsing/storefront/internal/app/domains/entity/etprice"
	"singsing/storefront/internal/app/domains/services/svcart"
	"singsing/storefront/internal/app/pkg/krw"
)

// FromItem converts a cart row.
func FromItem(it etcart.Item) ItemResponse {
	return ItemResponse{
		ProductID: it.ProductID,
		Name:      it.Name,
		Pack:      it.Pack,
		Qty:       it.Qty,
	}
}

// FromCartEntity converts a cart.
func FromCartEntity(cart *etcart.Cart) CartResponse {
	items := make([]ItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, FromItem(it))
	}
	return CartResponse{
		CartID: cart.ID,
		Items:  items,
		Count:  cart.Count(),
	}
}

// FromToastEntity converts a toast; nil stays nil.
func FromToastEntity(t *etnotice.Toast) *ToastResponse {
	if t == nil {
		return nil
	}
	return &ToastResponse{
		ID:         t.ID,
		Message:    t.Message,
		DurationMs: t.DurationMs,
		CreatedAt:  t.CreatedAt,
	}
}

// FromAddResult converts the outcome of an add.
func FromAddResult(res *svcart.AddResult) AddItemResponse {
	resp := AddItemResponse{
		Cart:  FromCartEntity(res.Cart),
		Count: res.Count,
		Toast: FromToastEntity(res.Toast),
	}
	if res.Item != nil {
		item := FromItem(*res.Item)
		resp.Item = &item
	}
	return resp
}

// FromSummary converts a priced cart, formatting amounts in won.
func FromSummary(s *etprice.Summary) SummaryResponse {
	lines := make([]LineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		line := LineResponse{
			ItemResponse:  FromItem(l.Item),
			LineTotal:     l.LineTotal,
			LineTotalText: krw.Won(l.LineTotal),
		}
		if l.Priced {
			price := l.UnitPrice
			line.UnitPrice = &price
			line.UnitPriceText = krw.Won(price)
		}
		lines = append(lines, line)
	}
	return SummaryResponse{
		CartID:         s.CartID,
		Lines:          lines,
		Count:          s.Count,
		Total:          s.Total,
		TotalText:      krw.Won(s.Total),
		Unpriced:       s.Unpriced,
		PriceUpdatedAt: s.PriceUpdatedAt,
		DispatchText:   s.DispatchText,
	}
}

// FromCatalog converts the product catalog.
func FromCatalog(products []etcart.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ProductID:   p.ID,
			Name:        p.Name,
			Packs:       append([]int(nil), p.Packs...),
			DefaultPack: p.DefaultPack,
		})
	}
	return out
}

// FromPriceTable converts a price table.
func FromPriceTable(t *etprice.Table) PriceTableResponse {
	items := make(map[string]map[string]int, len(t.Items))
	for pid, packs := range t.Items {
		byPack := make(map[string]int, len(packs))
		for pack, price := range packs {
			byPack[strconv.Itoa(pack)] = price
		}
		items[pid] = byPack
	}
	return PriceTableResponse{UpdatedAt: t.UpdatedAt, Items: items}
}
