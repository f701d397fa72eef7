package request

import "singsing/storefront/internal/app/domains/entity/etcart"

// ToRawItem converts the DTO into an unnormalized cart row.
func (r CartItem) ToRawItem() etcart.RawItem {
	return etcart.RawItem{
		ProductID: r.ProductID,
		Name:      r.Name,
		Pack:      r.Pack,
		Qty:       r.Qty,
	}
}

// ToRawItems converts the replacement items.
func (r *ReplaceCartRequest) ToRawItems() []etcart.RawItem {
	items := make([]etcart.RawItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToRawItem())
	}
	return items
}

// PackQuery turns the pack query parameter into a loose value; an absent
// parameter stays missing so the product default applies.
func PackQuery(value string, present bool) etcart.Loose {
	if !present {
		return etcart.Loose{}
	}
	return etcart.Str(value)
}

// ProductRef is the product reference as text; null, false and empty read as
// no product.
func (r *UpdateQtyRequest) ProductRef() string {
	return r.ProductID.Text()
}
